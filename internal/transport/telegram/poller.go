package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	"github.com/samber/oops"
)

// Poller owns the bot's update loop. The library retries every polling error
// forever, so Poller ends the loop itself when an error means the connection
// cannot recover: a revoked token or another instance polling the same bot.
type Poller struct {
	logger *slog.Logger

	once  sync.Once
	fatal error
	dead  chan struct{}
}

// NewPoller creates a new poller
func NewPoller() *Poller {
	return &Poller{
		logger: slog.Default(),
		dead:   make(chan struct{}),
	}
}

// SetLogger sets the logger
func (p *Poller) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// IsFatal reports whether a polling error ends the session.
func IsFatal(err error) bool {
	return errors.Is(err, bot.ErrorUnauthorized) || errors.Is(err, bot.ErrorConflict)
}

// HandleError is the bot's errors handler.
func (p *Poller) HandleError(err error) {
	if !IsFatal(err) {
		p.logger.Error("Telegram polling error", "error", err)
		return
	}
	p.once.Do(func() {
		p.fatal = err
		close(p.dead)
	})
}

// IgnoreUpdate is the bot's default handler. Updates that no registered
// handler matched, such as messages from unmonitored chats or direct messages
// to the bot, end here and are dropped.
func (p *Poller) IgnoreUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if msg, kind, ok := eventMessage(update); ok {
		p.logger.Debug("Ignoring update from unmonitored chat", "chat_id", msg.Chat.ID, "message_id", msg.ID, "kind", kind)
	}
}

// Run polls until ctx is cancelled, which returns nil, or until a fatal
// polling error, which returns ErrBotStopped.
func (p *Poller) Run(ctx context.Context, b *bot.Bot) error {
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-p.dead:
			cancel()
		case <-pollCtx.Done():
		}
	}()

	b.Start(pollCtx)

	select {
	case <-p.dead:
		p.logger.Error("Telegram connection lost", "error", p.fatal)
		return oops.In("telegram").With("cause", p.fatal.Error()).Wrap(apperrors.ErrBotStopped)
	default:
	}
	if ctx.Err() == nil {
		return apperrors.ErrBotStopped
	}
	return nil
}
