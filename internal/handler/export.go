package handler

import (
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// exportToExcel builds the report file and sends it as a document. The file
// is removed after the upload, the export directory never accumulates.
func (h *Handler) exportToExcel(chatID int64) {
	info, err := h.profileService.GetPersonalInfo(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load personal info")
		h.reply(chatID, "❌ Błąd odczytu danych: "+err.Error())
		return
	}
	periods, err := h.periodService.GetPeriods(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load periods")
		h.reply(chatID, "❌ Błąd odczytu okresów: "+err.Error())
		return
	}
	ranges, err := h.plannerService.GetRanges(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load colored ranges")
		h.reply(chatID, "❌ Błąd odczytu zakresów: "+err.Error())
		return
	}

	if len(h.periodService.ValidPeriods(periods)) == 0 {
		h.reply(chatID, "Brak kompletnych okresów podstawowych. Uzupełnij daty komendą /okresy.")
		return
	}

	path, err := h.exportService.ExportToExcel(info, periods, ranges)
	if err != nil {
		logrus.WithError(err).Error("failed to export workbook")
		h.reply(chatID, "❌ Błąd eksportu: "+err.Error())
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).Warn("failed to remove exported file")
		}
	}()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = "📤 Eksport SMK"
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).Error("failed to send exported file")
		h.reply(chatID, "❌ Błąd wysyłania pliku: "+err.Error())
	}
}
