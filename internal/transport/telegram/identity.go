package telegram

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/samber/oops"
)

// Identity resolves the bot's own user id with getMe. The first successful
// answer is cached; failures are retried on the next call.
type Identity struct {
	bot   *bot.Bot
	mu    sync.Mutex
	id    int64
	known bool
}

func NewIdentity(b *bot.Bot) *Identity {
	return &Identity{bot: b}
}

func (i *Identity) Self(ctx context.Context) (int64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.known {
		return i.id, nil
	}

	me, err := i.bot.GetMe(ctx)
	if err != nil {
		return 0, oops.In("telegram").With("method", "getMe").Wrap(err)
	}
	i.id, i.known = me.ID, true
	return i.id, nil
}
