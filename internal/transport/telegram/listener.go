package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/panjf2000/ants/v2"
	forwardService "github.com/reshetovitsme/approval-relay/internal/modules/forward/service"
	sourceDomain "github.com/reshetovitsme/approval-relay/internal/modules/source/domain"
)

// AllowedUpdates restricts polling to the update kinds the relay consumes.
var AllowedUpdates = bot.AllowedUpdates{
	"message",
	"edited_message",
	"channel_post",
	"edited_channel_post",
}

// Listener turns new and edited messages from monitored chats into inbound
// events and hands them to the forwarder on a worker pool.
type Listener struct {
	sources   *sourceDomain.Set
	forwarder *forwardService.Service
	pool      *ants.Pool
	logger    *slog.Logger
}

// NewListener creates a new listener
func NewListener(sources *sourceDomain.Set, forwarder *forwardService.Service, pool *ants.Pool) *Listener {
	return &Listener{
		sources:   sources,
		forwarder: forwarder,
		pool:      pool,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (l *Listener) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// Register attaches the listener to the bot. One handler serves both the
// new-message and the edited-message kinds.
func (l *Listener) Register(b *bot.Bot) string {
	return b.RegisterHandlerMatchFunc(l.Matches, l.HandleUpdate)
}

// Matches reports whether the update carries a message from a monitored chat.
func (l *Listener) Matches(update *models.Update) bool {
	msg, _, ok := eventMessage(update)
	return ok && l.sources.Contains(msg.Chat.ID, msg.Chat.Username)
}

// HandleUpdate processes incoming updates
func (l *Listener) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg, kind, ok := eventMessage(update)
	if !ok || !l.sources.Contains(msg.Chat.ID, msg.Chat.Username) {
		return
	}

	event := toInboundEvent(msg, kind)
	if err := l.pool.Submit(func() {
		l.forwarder.Process(ctx, event)
	}); err != nil {
		l.logger.Error("Failed to schedule event", "chat_id", event.ChatID, "message_id", event.MessageID, "error", err)
	}
}
