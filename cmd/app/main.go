package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finestevents/backend/api"
	"github.com/finestevents/backend/config"
	"github.com/finestevents/backend/internal/auth"
	"github.com/finestevents/backend/internal/bootstrap"
	"github.com/finestevents/backend/internal/cache"
	"github.com/finestevents/backend/internal/kafka"
	"github.com/finestevents/backend/internal/llm"
	"github.com/finestevents/backend/internal/repository"
	"github.com/finestevents/backend/internal/service/bookings"
	"github.com/finestevents/backend/internal/service/chat"
	"github.com/finestevents/backend/internal/service/events"
	"github.com/finestevents/backend/internal/service/inquiries"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eventRepo   repository.EventRepository
		inquiryRepo repository.InquiryRepository
		bookingRepo repository.BookingRepository
	)
	if cfg.Database.DSN != "" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("connect postgres")
		}
		defer pool.Close()
		eventRepo = repository.NewEventRepository(pool)
		inquiryRepo = repository.NewInquiryRepository(pool)
		bookingRepo = repository.NewBookingRepository(pool)
		log.Info().Msg("using postgres storage")
	} else {
		eventRepo = repository.NewMemoryEventRepository(repository.SeedEvents())
		inquiryRepo = repository.NewMemoryInquiryRepository()
		bookingRepo = repository.NewMemoryBookingRepository()
		log.Warn().Msg("no database configured, using seeded in-memory storage")
	}

	var bookingCache bookings.Cache
	if cfg.Redis.Addr != "" {
		bookingCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.BlockedDatesCacheTTL)*time.Second)
	}

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}

	bookingOpts := []bookings.BookingServiceOption{}
	inquiryOpts := []inquiries.InquiryServiceOption{}
	if producer != nil {
		bookingOpts = append(bookingOpts, bookings.WithProducer(producer, cfg.Kafka.NotificationsTopic))
		inquiryOpts = append(inquiryOpts, inquiries.WithProducer(producer, cfg.Kafka.NotificationsTopic))
	}
	if cfg.Booking.GuardAccept {
		bookingOpts = append(bookingOpts, bookings.WithAcceptGuard())
	}

	eventService := events.NewEventService(eventRepo, log)
	inquiryService := inquiries.NewInquiryService(inquiryRepo, log, inquiryOpts...)
	bookingService := bookings.NewBookingService(bookingRepo, bookingCache, log, bookingOpts...)

	var generator chat.ReplyGenerator
	if cfg.Chat.APIKey != "" {
		generator = llm.NewClient(llm.Config{
			ResponsesURL: cfg.Chat.ResponsesURL,
			Model:        cfg.Chat.Model,
			APIKey:       cfg.Chat.APIKey,
		})
	} else {
		log.Warn().Msg("chat api key not configured, /api/chat will fail")
	}
	chatService := chat.NewChatService(generator, bookingService, eventService, log)

	authenticator := auth.NewStaticAuthenticator(cfg.Admin.Username, cfg.Admin.Password)

	engine := bootstrap.NewRouter(cfg, authenticator, bootstrap.Handlers{
		Events:    api.NewEventHandler(eventService),
		Inquiries: api.NewInquiryHandler(inquiryService),
		Bookings:  api.NewBookingHandler(bookingService),
		Admin:     api.NewAdminHandler(authenticator),
		Chat:      api.NewChatHandler(chatService),
	}, log)

	log.Info().Str("address", cfg.HTTP.Address).Msg("starting server")
	if err := bootstrap.Run(ctx, cfg, engine); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}
