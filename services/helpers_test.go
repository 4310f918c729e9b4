package services_test

import (
	"chat-room/contract"
	"chat-room/domain/chat"
	"chat-room/domain/event"
	"chat-room/observability"
	"chat-room/repositories"
	"chat-room/runtime"
	"chat-room/services"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (p *recordingPublisher) Publish(e event.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) closures() []event.RoomClosed {
	p.mu.Lock()
	defer p.mu.Unlock()
	var closed []event.RoomClosed
	for _, e := range p.events {
		if c, ok := e.(event.RoomClosed); ok {
			closed = append(closed, c)
		}
	}
	return closed
}

func (p *recordingPublisher) posted() []event.MessagePosted {
	p.mu.Lock()
	defer p.mu.Unlock()
	var posted []event.MessagePosted
	for _, e := range p.events {
		if m, ok := e.(event.MessagePosted); ok {
			posted = append(posted, m)
		}
	}
	return posted
}

// stack is the chat room core on a real Badger database.
type stack struct {
	db        *badger.DB
	rooms     repositories.RoomRepository
	messages  repositories.MessageRepository
	users     repositories.IUserRepository
	registry  *runtime.Registry
	metrics   *observability.Metrics
	names     *services.NameResolver
	lifecycle *services.LifecycleService
	admission *services.AdmissionService
	query     *services.QueryService
	chat      *services.ChatService
}

func newStack(t *testing.T, publisher contract.IPublisher, requireMembership bool) *stack {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	s := &stack{
		db:       db,
		rooms:    repositories.NewRoomRepository(db, log),
		messages: repositories.NewMessageRepository(db, log),
		users:    repositories.NewUserRepository(db),
		registry: runtime.NewRegistry(),
		metrics:  observability.NewMetrics(prometheus.NewRegistry()),
	}
	s.names, err = services.NewNameResolver(log, s.users, 100)
	req.NoError(err)
	t.Cleanup(s.names.Close)

	locks := runtime.NewRoomLocks()
	s.lifecycle = services.NewLifecycleService(log, s.rooms, locks, publisher, s.metrics)
	s.admission = services.NewAdmissionService(log, s.rooms, s.messages, locks, s.lifecycle,
		publisher, s.names, chat.DefaultQuota(), s.metrics)
	s.query = services.NewQueryService(s.rooms, s.messages, s.names)
	s.chat = services.NewChatService(log, s.admission, s.lifecycle, s.query,
		s.rooms, s.registry, locks, s.names, requireMembership)
	return s
}

func (s *stack) createRoom(t *testing.T, id chat.RoomID, participants ...chat.UserID) {
	require.NoError(t, s.rooms.CreateRoom(chat.NewRoom(id, participants...)))
}
