package service

import (
	"context"
	"log/slog"
	"time"

	approvalService "github.com/reshetovitsme/approval-relay/internal/modules/approval/service"
	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
	forwardRepo "github.com/reshetovitsme/approval-relay/internal/modules/forward/repository"
	messageDomain "github.com/reshetovitsme/approval-relay/internal/modules/message/domain"
	"github.com/samber/oops"
)

// Service runs the classify, dedup and forward pipeline for inbound events
type Service struct {
	classifier *approvalService.Classifier
	records    forwardRepo.Repository
	sender     Sender
	self       SelfResolver
	locks      *keyedMutex
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a new forward service
func New(classifier *approvalService.Classifier, records forwardRepo.Repository, sender Sender, self SelfResolver) *Service {
	return &Service{
		classifier: classifier,
		records:    records,
		sender:     sender,
		self:       self,
		locks:      newKeyedMutex(),
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handle runs one event through the pipeline. Both new and edited messages
// take the same path. It is safe to call concurrently: the dedup check, the
// send and the record insertion are serialized per source message, so a
// message is forwarded at most once. A failed send records nothing, which
// leaves the next approved event for the same message free to try again.
func (s *Service) Handle(ctx context.Context, event messageDomain.InboundEvent) (domain.Outcome, error) {
	errb := oops.
		In("forward").
		With("chat_id", event.ChatID, "message_id", event.MessageID, "kind", event.Kind.String())

	selfID, err := s.self.Self(ctx)
	if err != nil {
		return "", errb.With("context", "failed to resolve own account").Wrap(err)
	}
	if event.SenderID == selfID {
		return domain.OutcomeOwnMessage, nil
	}

	text, entities := event.EffectiveText()
	if !s.classifier.IsApproved(text) {
		return domain.OutcomeNotApproved, nil
	}

	key := domain.KeyOf(event)
	unlock := s.locks.Lock(key)
	defer unlock()

	seen, err := s.records.Has(key)
	if err != nil {
		return "", errb.With("context", "failed to check forward record").Wrap(err)
	}
	if seen {
		return domain.OutcomeDuplicate, nil
	}

	msg := messageDomain.OutboundMessage{
		Text:     text,
		Entities: entities,
		Media:    event.Media,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return "", errb.With("context", "failed to send to destination").Wrap(err)
	}

	if err := s.records.Record(&domain.Record{Key: key, ForwardedAt: s.now()}); err != nil {
		return "", errb.With("context", "message sent but forward record not saved").Wrap(err)
	}

	return domain.OutcomeForwarded, nil
}

// Process is the fire-and-forget form of Handle used by the transport.
// Errors are logged and the event is dropped.
func (s *Service) Process(ctx context.Context, event messageDomain.InboundEvent) {
	outcome, err := s.Handle(ctx, event)
	if err != nil {
		s.logger.Error("Handler error",
			"chat_id", event.ChatID,
			"message_id", event.MessageID,
			"kind", event.Kind,
			"error", err,
		)
		return
	}

	switch outcome {
	case domain.OutcomeForwarded:
		s.logger.Info("Approved message forwarded", "chat_id", event.ChatID, "message_id", event.MessageID, "kind", event.Kind)
	case domain.OutcomeDuplicate:
		s.logger.Debug("Approved message already forwarded", "chat_id", event.ChatID, "message_id", event.MessageID, "kind", event.Kind)
	}
}
