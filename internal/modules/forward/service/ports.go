//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../../../mocks/mock_ports.go -package=mocks

package service

import (
	"context"

	messageDomain "github.com/reshetovitsme/approval-relay/internal/modules/message/domain"
)

// Sender delivers a freshly composed message to the destination channel.
// It must never use the platform's forward feature.
type Sender interface {
	Send(ctx context.Context, msg messageDomain.OutboundMessage) error
}

// SelfResolver returns the id of the account the relay is authenticated as.
type SelfResolver interface {
	Self(ctx context.Context) (int64, error)
}
