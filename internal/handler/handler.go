package handler

import (
	"strings"

	"leave-planner-bot/internal/config"
	"leave-planner-bot/internal/models"
	"leave-planner-bot/internal/service"
	"leave-planner-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// chatSession is the per-chat transient interaction state: the active legend
// category, the pending two-click selection, a suspended label request and
// a marker for expected text input. It lives in memory only, nothing here
// is persisted.
type chatSession struct {
	activeType   string
	selection    models.RangeSelection
	pendingLabel *service.LabelRequest
	awaiting     string
	editIndex    int
	editField    string
	firstName    string
}

const (
	awaitingFirstName  = "first_name"
	awaitingLastName   = "last_name"
	awaitingPeriodDate = "period_date"
	awaitingRangeLabel = "range_label"
)

type Handler struct {
	client         *telegram.Client
	plannerService *service.PlannerService
	periodService  *service.PeriodService
	profileService *service.ProfileService
	exportService  *service.ExportService
	sessions       map[int64]*chatSession
	config         *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	plannerService *service.PlannerService,
	periodService *service.PeriodService,
	profileService *service.ProfileService,
	exportService *service.ExportService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:         client,
		plannerService: plannerService,
		periodService:  periodService,
		profileService: profileService,
		exportService:  exportService,
		sessions:       make(map[int64]*chatSession),
		config:         cfg,
	}
}

func (h *Handler) session(chatID int64) *chatSession {
	s, ok := h.sessions[chatID]
	if !ok {
		s = &chatSession{}
		h.sessions[chatID] = s
	}
	return s
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

// allowedChat reports whether the chat may use the bot. The planner is a
// single-owner bot: when an owner chat is configured, every other chat is
// turned away.
func (h *Handler) allowedChat(chatID int64) bool {
	return h.config.BaseAdminChatID == 0 || h.config.BaseAdminChatID == chatID
}

func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Answer right away so the client stops showing the spinner.
	if _, err := h.client.Bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logrus.WithError(err).Warn("failed to answer callback query")
	}

	if !h.allowedChat(chatID) {
		logrus.WithField("chat_id", chatID).Warn("callback from unauthorized chat")
		return
	}

	parts := strings.Split(data, "|")
	switch parts[0] {
	case "day":
		h.handleDayCallback(chatID, callback.Message.MessageID, parts)
	case "legend":
		h.handleLegendCallback(chatID, parts)
	case "nav":
		h.handleNavCallback(chatID, callback.Message.MessageID, parts)
	case "period_del":
		h.handlePeriodDeleteCallback(chatID, parts)
	case "period_edit":
		h.handlePeriodEditCallback(chatID, parts)
	case "noop":
		// Filler buttons in the calendar grid.
	default:
		logrus.Warnf("unknown callback data: %q", data)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	logrus.Infof("[%s] %s", message.From.UserName, message.Text)

	chatID := message.Chat.ID
	if !h.allowedChat(chatID) {
		logrus.WithField("chat_id", chatID).Warn("message from unauthorized chat")
		h.reply(chatID, "⛔ Ten bot jest prywatny.")
		return
	}
	sess := h.session(chatID)

	if message.IsCommand() {
		sess.awaiting = ""
		h.handleCommand(message)
		return
	}

	if sess.awaiting != "" {
		h.handleAwaitedInput(chatID, sess, strings.TrimSpace(message.Text))
		return
	}

	h.reply(chatID, "Użyj /pomoc, aby zobaczyć dostępne komendy.")
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Warn("failed to send message")
	}
}
