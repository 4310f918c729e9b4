package main

import (
	"chat-room/auth"
	"chat-room/domain/chat"
	"chat-room/infrastructure/http/server"
	"chat-room/internal"
	"chat-room/moderation"
	"chat-room/observability"
	"chat-room/repositories"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"chat-room/services"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle and centralizes error reporting,
// so that every defer (database close first) runs before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	roomRepository := repositories.NewRoomRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, log)
	userRepository := repositories.NewUserRepository(db)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)
	subscribers := runtime.NewRegistry()
	observability.RegisterSubscribers(registry, subscribers.Count)

	// 4. Delivery side
	broadcaster := runtime.NewBroadcaster(config.NumberOfWorkers)
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log, config.RestartInterval),
		subscribers, broadcaster, config.SinkTimeout, metrics)

	// 5. Chat room core
	names, err := services.NewNameResolver(log, userRepository, config.NameCacheSize)
	if err != nil {
		return fmt.Errorf("name cache: %w", err)
	}
	defer names.Close()

	locks := runtime.NewRoomLocks()
	quota := chat.Quota{MaxTotal: config.MaxTotalMessages, MaxSender: config.MaxSenderMessages}
	lifecycle := services.NewLifecycleService(log, roomRepository, locks, broadcaster, metrics)
	admission := services.NewAdmissionService(log, roomRepository, messageRepository, locks,
		lifecycle, broadcaster, names, quota, metrics)
	if config.CensoredWordsDir != "" {
		moderator, err := newModerator(log, config)
		if err != nil {
			return err
		}
		admission.WithFilter(moderator)
	}
	if !config.JoinRequiresMembership {
		log.Warn("JOIN_REQUIRES_MEMBERSHIP is disabled, any authenticated connection may listen to any room")
	}
	chatService := services.NewChatService(log, admission, lifecycle,
		services.NewQueryService(roomRepository, messageRepository, names),
		roomRepository, subscribers, locks, names, config.JoinRequiresMembership)

	// 6. HTTP server
	tokens := auth.NewTokenManager(config.JWTSecret)
	wsHandler := server.NewWSHandler(log, chatService, server.WSConfig{
		BufferSize:     config.ConnectionBufferSize,
		WriteWait:      config.WriteWait,
		PongWait:       config.PongWait,
		PingInterval:   config.PingInterval,
		MaxMessageSize: config.MaxMessageSize,
		InboundRate:    config.InboundRate,
		InboundBurst:   config.InboundBurst,
		AllowedOrigins: config.Origins(),
	})
	router := server.NewRouter(log, server.NewChatHandler(log, chatService), wsHandler, tokens, registry,
		func() error {
			if db.IsClosed() {
				return stderrors.New("database is closed")
			}
			return nil
		})
	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	httpServer := &http.Server{Addr: address, Handler: router}

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orchestrator.Start(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info("Starting HTTP server", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// 8. Wait for Stop or Error, then drain
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		if wsErr := wsHandler.Shutdown(shutdownCtx); wsErr != nil {
			log.Warn("Websocket connections still open at shutdown", "error", wsErr)
		}
		orchestrator.Stop()
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}

func newModerator(log *slog.Logger, config internal.Config) (*moderation.Moderator, error) {
	char, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	data, err := runtime.NewCensoredLoader(os.DirFS(config.CensoredWordsDir)).LoadAll(".")
	if err != nil {
		return nil, fmt.Errorf("censored words from %s: %w", config.CensoredWordsDir, err)
	}
	log.Info("Censored words loaded", "words", len(data.Words), "languages", data.Languages)
	return moderation.NewModerator(data.Words, char, log)
}
