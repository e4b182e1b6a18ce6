package handler

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func (h *Handler) startNameInput(chatID int64) {
	sess := h.session(chatID)
	sess.awaiting = awaitingFirstName
	sess.firstName = ""

	h.reply(chatID, "✏️ Podaj swoje imię:")
}

func (h *Handler) showProfile(chatID int64) {
	info, err := h.profileService.GetPersonalInfo(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load personal info")
		h.reply(chatID, "❌ Błąd odczytu danych: "+err.Error())
		return
	}

	if info.FirstName == "" && info.LastName == "" {
		h.reply(chatID, "Nie podano jeszcze imienia i nazwiska. Użyj /imie.")
		return
	}

	h.reply(chatID, fmt.Sprintf("👤 %s %s", info.FirstName, info.LastName))
}

// handleAwaitedInput consumes a plain text message when the session expects
// one: a name, a period boundary date or a label for a freshly committed
// range.
func (h *Handler) handleAwaitedInput(chatID int64, sess *chatSession, text string) {
	switch sess.awaiting {
	case awaitingFirstName:
		sess.firstName = text
		sess.awaiting = awaitingLastName
		h.reply(chatID, fmt.Sprintf("✅ Imię: %s\n✏️ Teraz podaj nazwisko:", text))

	case awaitingLastName:
		sess.awaiting = ""
		if err := h.profileService.SetName(chatID, sess.firstName, text); err != nil {
			logrus.WithError(err).Error("failed to save personal info")
			h.reply(chatID, "❌ Błąd zapisu danych: "+err.Error())
			return
		}
		h.reply(chatID, fmt.Sprintf("✅ Zapisano: %s %s", sess.firstName, text))

	case awaitingPeriodDate:
		sess.awaiting = ""
		h.applyPeriodDate(chatID, sess, text)

	case awaitingRangeLabel:
		sess.awaiting = ""
		h.applyRangeLabel(chatID, sess, text)

	default:
		sess.awaiting = ""
	}
}
