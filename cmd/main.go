package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/liorae/liora/internal/chat"
	"github.com/liorae/liora/internal/config"
	"github.com/liorae/liora/internal/contact"
	"github.com/liorae/liora/internal/httpserver"
	"github.com/liorae/liora/internal/httpserver/middleware"
	"github.com/liorae/liora/internal/mail"
	"github.com/liorae/liora/internal/observability"
	openaiprovider "github.com/liorae/liora/internal/provider/openai"
	"github.com/liorae/liora/internal/session"
	"github.com/liorae/liora/internal/site"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability (invoked for side effects: sets the global logger)
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Invoke(func(_ *zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Completion client cache: the client is built lazily on the first
	// chat request that needs it.
	if err := container.Provide(func(cfg *chat.Config) *chat.ClientCache {
		return chat.NewClientCache(*cfg, func(c chat.Config, apiKey string) (chat.Completer, error) {
			return openaiprovider.NewCompleter(c, apiKey)
		})
	}); err != nil {
		log.Fatalf("Failed to provide client cache: %v", err)
	}

	// Reply service
	if err := container.Provide(func(cfg *config.Config, clients *chat.ClientCache) *chat.ReplyService {
		return chat.NewReplyService(clients, cfg.Chat, cfg.Debug)
	}); err != nil {
		log.Fatalf("Failed to provide reply service: %v", err)
	}

	// Mail + contact notifications
	if err := container.Provide(func(cfg *mail.Config) mail.Sender {
		return mail.NewSMTPSender(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide mail sender: %v", err)
	}
	if err := container.Provide(func(sender mail.Sender, cfg *mail.Config) (*contact.Service, error) {
		return contact.NewService(sender, *cfg)
	}); err != nil {
		log.Fatalf("Failed to provide contact service: %v", err)
	}

	// Session store: Redis when configured, in-memory otherwise.
	if err := container.Provide(func(cfg *config.RedisConfig) session.Store {
		if cfg.Addr == "" {
			return session.NewMemoryStore()
		}
		return session.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}))
	}); err != nil {
		log.Fatalf("Failed to provide session store: %v", err)
	}

	// Page renderer
	if err := container.Provide(site.NewRenderer); err != nil {
		log.Fatalf("Failed to provide page renderer: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
