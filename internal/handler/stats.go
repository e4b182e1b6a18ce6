package handler

import (
	"fmt"
	"strings"

	"leave-planner-bot/internal/service"

	"github.com/sirupsen/logrus"
)

func (h *Handler) showStats(chatID int64) {
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

	valid := h.periodService.ValidPeriods(periods)
	if len(valid) == 0 {
		h.reply(chatID, "Brak kompletnych okresów podstawowych. Uzupełnij daty komendą /okresy.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Statystyki:\n")
	for i, p := range valid {
		result := service.GroupAndSummarizeRanges(ranges, p.Start, p.End)
		sb.WriteString(fmt.Sprintf("\nRok %d (%s - %s)\n", i+1, p.Start, p.End))
		sb.WriteString(service.FormatStatsText(result.Grouped, result.TotalWorkingDays, result.ColoredRangeDays))
		sb.WriteString("\n")
	}

	h.reply(chatID, sb.String())
}
