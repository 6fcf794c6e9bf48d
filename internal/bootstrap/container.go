package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"notetaking-be/internal/config"
	"notetaking-be/internal/controller"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/memory"
	"notetaking-be/internal/repository/redisstore"
	"notetaking-be/internal/repository/unitofwork"
	"notetaking-be/internal/service"
	wshub "notetaking-be/internal/websocket"
	"notetaking-be/pkg/events"

	pktNats "notetaking-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bootstrapModule = "bootstrap"

type Container struct {
	// Controllers
	NoteController controller.INoteController
	AuthController controller.IAuthController
	PageController controller.IPageController
	FeedController controller.IFeedController

	// Services needed outside the controllers (middleware, tools, main.go)
	AuthService     service.IAuthService
	NoteService     service.INoteService
	ConsumerService service.IConsumerService
	FeedService     service.IFeedService

	// Live note feed
	Hub *wshub.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := NewContainerWithLogger(db, cfg, sysLogger)
	c.closers = append(c.closers, func() { _ = sysLogger.Sync() })
	return c
}

// NewContainerWithLogger builds the object graph around an existing logger.
func NewContainerWithLogger(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	rdb := c.connectRedis(cfg)
	var tokenRepo contract.TokenRepository = memory.NewTokenRepository()
	if rdb != nil {
		tokenRepo = redisstore.NewTokenRepository(rdb)
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS is optional; a missing server only loses the external copy of events.
	var eventPublisher events.Publisher
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn(bootstrapModule, "failed to connect to NATS publisher", map[string]interface{}{"error": err})
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Services
	jwtSecret := cfg.Auth.JwtSecret
	if jwtSecret == "" {
		jwtSecret = randomSecret()
		sysLogger.Warn(bootstrapModule, "JWT_SECRET is not set, using a random secret; tokens will not survive a restart", nil)
	}

	publisherService := service.NewPublisherService(cfg.Events.NoteEventTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.NoteEventTopic, uowFactory, sysLogger)
	c.AuthService = service.NewAuthService(uowFactory, tokenRepo, jwtSecret, cfg.Auth.TokenTTL, sysLogger)
	c.NoteService = service.NewNoteService(uowFactory, publisherService, eventPublisher, sysLogger)

	c.Hub = wshub.NewHub(rdb, sysLogger)
	c.FeedService = service.NewFeedService(pubSub, cfg.Events.NoteEventTopic, c.Hub, sysLogger)

	// 4. Controllers
	c.NoteController = controller.NewNoteController(c.NoteService)
	c.AuthController = controller.NewAuthController(c.AuthService, cfg.IsProduction())
	c.PageController = controller.NewPageController(cfg.Auth.LoginURL)
	c.FeedController = controller.NewFeedController(c.Hub, c.AuthService)

	return c
}

// Close releases the event bus and external connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Start launches the background workers: the activity consumer, the live
// feed and its hub. They stop when ctx is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.Hub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return err
	}
	return c.FeedService.Consume(ctx)
}

// connectRedis returns nil when REDIS_URL is unset or unreachable; callers
// fall back to per-process state.
func (c *Container) connectRedis(cfg *config.Config) *redis.Client {
	if cfg.App.RedisURL == "" {
		return nil
	}

	rdb, err := redisstore.Connect(context.Background(), cfg.App.RedisURL)
	if err != nil {
		c.Logger.Warn(bootstrapModule, "redis unavailable, keeping token revocations and feed delivery local", map[string]interface{}{"error": err})
		return nil
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return rdb
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
