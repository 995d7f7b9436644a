package services

import (
	"context"
	"sort"
	"time"

	domainevents "relay-chat/internal/events"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
	"relay-chat/pkg/events"
	"relay-chat/pkg/logger"
)

type MessageService struct {
	repo      repository.MessageRepository
	publisher events.Publisher
	logger    *logger.Logger
}

func NewMessageService(repo repository.MessageRepository, publisher events.Publisher, l *logger.Logger) *MessageService {
	if l == nil {
		l = logger.NewNop()
	}
	return &MessageService{repo: repo, publisher: publisher, logger: l}
}

// Create stores the message, defaulting MsgDateTime to now when absent,
// and publishes one messageUpdate event carrying the stored record. The
// publish is fire-and-forget: failures are logged, never surfaced.
func (s *MessageService) Create(ctx context.Context, m message.Message) (message.Message, error) {
	if m.MsgDateTime.IsZero() {
		m.MsgDateTime = time.Now()
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return message.Message{}, relay_errors.ErrSaveFailed
	}

	s.notify(ctx, m)
	return m, nil
}

// List returns all messages ordered by MsgDateTime ascending. A store
// fault is downgraded to an empty result; the suppressed error is logged
// so the degradation stays observable.
func (s *MessageService) List(ctx context.Context) []message.Message {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.ErrorfCtx(ctx, "message listing failed, returning empty set: %s", err)
		return []message.Message{}
	}
	if items == nil {
		// gorm's Find leaves the slice nil when no rows match; callers
		// are promised an array, possibly empty.
		items = []message.Message{}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MsgDateTime.Before(items[j].MsgDateTime)
	})
	return items
}

func (s *MessageService) notify(ctx context.Context, m message.Message) {
	if s.publisher == nil {
		return
	}
	evt := events.Event{
		Type:      domainevents.EventTypeMessageUpdate,
		Payload:   domainevents.MessagePayload{Msg: m},
		Timestamp: time.Now().Unix(),
	}
	if err := s.publisher.Publish(ctx, domainevents.ChannelMessages, evt); err != nil {
		s.logger.ErrorfCtx(ctx, "failed to publish %s event: %s", domainevents.EventTypeMessageUpdate, err)
	}
}
