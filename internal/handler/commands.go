package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		h.sendStartMessage(chatID)
	case "pomoc", "help":
		h.sendHelpMessage(chatID)
	case "imie":
		h.startNameInput(chatID)
	case "profil":
		h.showProfile(chatID)
	case "okresy":
		h.showPeriods(chatID)
	case "dodaj_okres":
		h.addPeriod(chatID)
	case "kalendarz":
		h.showCalendar(chatID)
	case "legenda":
		h.showLegend(chatID)
	case "statystyki":
		h.showStats(chatID)
	case "eksport":
		h.exportToExcel(chatID)
	default:
		h.reply(chatID, "❌ Nieznana komenda. Użyj /pomoc, aby zobaczyć listę komend.")
	}
}

func (h *Handler) sendStartMessage(chatID int64) {
	text := `👋 Witaj w planerze urlopów i staży!

Bot pozwala zaznaczać w kalendarzu urlopy, staże, kursy i inne nieobecności,
a następnie liczy dni robocze z uwzględnieniem polskich świąt.

Zacznij od:
1. /imie - podaj imię i nazwisko
2. /okresy - sprawdź okresy podstawowe
3. /legenda - wybierz kategorię
4. /kalendarz - zaznaczaj dni w kalendarzu

Pełna lista komend: /pomoc`

	h.reply(chatID, text)
}

func (h *Handler) sendHelpMessage(chatID int64) {
	text := `📋 Dostępne komendy:

👤 Profil:
/imie - Ustaw imię i nazwisko
/profil - Pokaż zapisane dane

📅 Okresy podstawowe:
/okresy - Lista okresów z przyciskami edycji
/dodaj_okres - Dodaj kolejny okres (rok)

🗓 Kalendarz:
/legenda - Wybierz aktywną kategorię (np. Urlop, Kursy)
/kalendarz - Pokaż kalendarz i zaznaczaj dni

Jak zaznaczać:
1. Wybierz kategorię w /legenda
2. Kliknij pierwszy dzień zakresu
3. Kliknij ostatni dzień zakresu
Pojedyncze kliknięcie bez kategorii usuwa istniejący zakres.
Kategoria Dyżur zaznacza pojedyncze dni, także w weekendy.

📊 Statystyki:
/statystyki - Dni robocze w podziale na kategorie

📤 Eksport:
/eksport - Pobierz plik Excel (SMK)

🛠 Inne:
/start - Wiadomość powitalna
/pomoc - To zestawienie`

	h.reply(chatID, text)
}
