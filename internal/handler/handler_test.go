package handler

import (
	"testing"

	"leave-planner-bot/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestAllowedChat(t *testing.T) {
	h := &Handler{config: &config.BotConfig{}}
	assert.True(t, h.allowedChat(123), "without an owner chat everyone is allowed")

	h.config.BaseAdminChatID = 42
	assert.True(t, h.allowedChat(42))
	assert.False(t, h.allowedChat(123))
}
