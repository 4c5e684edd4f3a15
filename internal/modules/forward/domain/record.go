package domain

import (
	"fmt"
	"time"

	messageDomain "github.com/reshetovitsme/approval-relay/internal/modules/message/domain"
)

// Key identifies a source message. The event kind is deliberately not part
// of it: a new-message event and later edits of the same message share a key.
type Key struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int   `json:"message_id"`
}

// KeyOf returns the dedup key of an event.
func KeyOf(event messageDomain.InboundEvent) Key {
	return Key{ChatID: event.ChatID, MessageID: event.MessageID}
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.ChatID, k.MessageID)
}

// Record marks a source message as delivered to the destination channel.
type Record struct {
	Key         Key       `json:"key"`
	ForwardedAt time.Time `json:"forwarded_at"`
}
