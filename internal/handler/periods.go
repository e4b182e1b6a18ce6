package handler

import (
	"fmt"
	"strconv"
	"strings"

	"leave-planner-bot/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showPeriods(chatID int64) {
	periods, err := h.periodService.GetPeriods(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load periods")
		h.reply(chatID, "❌ Błąd odczytu okresów: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("📅 Okresy podstawowe:\n\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, p := range periods {
		sb.WriteString(fmt.Sprintf("Rok %d: %s - %s\n", i+1, orDash(p.Start), orDash(p.End)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("✏️ Rok %d: początek", i+1), fmt.Sprintf("period_edit|%d|start", i)),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("✏️ Rok %d: koniec", i+1), fmt.Sprintf("period_edit|%d|end", i)),
			tgbotapi.NewInlineKeyboardButtonData(
				"🗑", fmt.Sprintf("period_del|%d", i)),
		))
	}
	sb.WriteString("\nNowy okres: /dodaj_okres")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Warn("failed to send periods")
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (h *Handler) addPeriod(chatID int64) {
	if err := h.periodService.AddPeriod(chatID); err != nil {
		logrus.WithError(err).Error("failed to add period")
		h.reply(chatID, "❌ Błąd dodawania okresu: "+err.Error())
		return
	}
	h.showPeriods(chatID)
}

func (h *Handler) handlePeriodEditCallback(chatID int64, parts []string) {
	if len(parts) != 3 {
		return
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	field := parts[2]
	if field != "start" && field != "end" {
		return
	}

	sess := h.session(chatID)
	sess.awaiting = awaitingPeriodDate
	sess.editIndex = index
	sess.editField = field

	bound := "początkową"
	if field == "end" {
		bound = "końcową"
	}
	h.reply(chatID, fmt.Sprintf("✏️ Podaj datę %s dla Roku %d (RRRR-MM-DD, np. 2024-03-01):", bound, index+1))
}

// applyPeriodDate consumes the date the user typed after choosing a period
// bound to edit. Format errors keep the field untouched; semantic errors come
// back from validation with the offending field already cleared.
func (h *Handler) applyPeriodDate(chatID int64, sess *chatSession, text string) {
	if !dates.IsValidISODate(text) {
		h.reply(chatID, "❌ Nieprawidłowy format daty. Oczekiwany RRRR-MM-DD, np. 2024-03-01.")
		return
	}

	result, err := h.periodService.UpdatePeriodField(chatID, sess.editIndex, sess.editField, text)
	if err != nil {
		logrus.WithError(err).Error("failed to update period")
		h.reply(chatID, "❌ Błąd zapisu okresu: "+err.Error())
		return
	}
	if !result.IsValid {
		h.reply(chatID, "⚠️ "+result.ErrorMessage)
		h.showPeriods(chatID)
		return
	}

	h.reply(chatID, "✅ Zapisano datę.")
	h.showPeriods(chatID)
}

func (h *Handler) handlePeriodDeleteCallback(chatID int64, parts []string) {
	if len(parts) != 2 {
		return
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	if err := h.periodService.DeletePeriod(chatID, index); err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Usunięto Rok %d wraz z zakresami z tego roku.", index+1))
	h.showPeriods(chatID)
}
