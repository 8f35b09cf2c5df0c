package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/fixfly-BE/api"
	"github.com/katatrina/fixfly-BE/internal/cache"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	subscriptiontracking "github.com/katatrina/fixfly-BE/internal/subscription_tracking"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/katatrina/fixfly-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"

	_ "github.com/katatrina/fixfly-BE/docs"
)

const shutdownTimeout = 10 * time.Second

//	@title			FixFly API
//	@version		1.0.0
//	@description	API documentation for FixFly: AMC subscriptions and on-site repair bookings

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	if !config.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Msg("configurations loaded successfully ✅")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()

	pingErr := connPool.Ping(ctx)
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	if err = bootstrapAdmin(ctx, store, config); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account 😣")
	}

	var planCache cache.PlanCache = cache.NoopPlanCache{}
	if config.RedisServerAddress != "" {
		redisDb := redis.NewClient(&redis.Options{
			Addr:     config.RedisServerAddress,
			Password: "", // no password set
			DB:       0,  // use default DB
		})
		defer redisDb.Close()

		if err = redisDb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, plan cache disabled")
		} else {
			planCache = cache.NewRedisPlanCache(redisDb)
			log.Info().Msg("connected to redis ✅")
		}
	}

	// Thông báo: build sink thật, rồi đẩy qua hàng đợi asynq để request không phải chờ
	var notifier notification.Sink = notification.NoopSink{}
	if config.NotificationsEnabled {
		deliverySink, err := buildNotificationSink(ctx, config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build notification sink 😣")
		}

		redisOpt := asynq.RedisClientOpt{
			Addr: config.RedisServerAddress,
		}

		taskProcessor := worker.NewRedisTaskProcessor(redisOpt, deliverySink)
		if err = taskProcessor.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start task processor 😣")
		}
		defer taskProcessor.Shutdown()
		log.Info().Msg("task processor started ✅")

		taskDistributor := worker.NewTaskDistributor(redisOpt)
		defer taskDistributor.Close()

		notifier = worker.NewQueuedSink(taskDistributor)
	}

	tracker, err := subscriptiontracking.NewSubscriptionTracker(store, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create subscription tracker 😣")
	}
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start subscription tracker 😣")
	}
	defer func() {
		if err := tracker.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop subscription tracker")
		}
	}()
	log.Info().Msg("subscription tracker started ✅")

	paymentGateway := razorpay.NewRazorpayService(config)

	runServers(ctx, config, store, paymentGateway, notifier, planCache)
}

func runServers(ctx context.Context, config util.Config, store db.Store, paymentGateway razorpay.PaymentGateway, notifier notification.Sink, planCache cache.PlanCache) {
	server, err := api.NewServer(store, &config, paymentGateway, notifier, planCache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.Handler(),
	}

	webhookListener, err := listenWebhook(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open webhook listener 😣")
	}

	webhookServer := &http.Server{
		Handler: server.SetupWebhookRouter(),
	}

	go func() {
		log.Info().Str("address", config.HTTPServerAddress).Msg("HTTP server started ✅")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
		}
	}()

	go func() {
		if err := webhookServer.Serve(webhookListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start webhook server 😣")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
	if err := webhookServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("webhook server forced to shutdown")
	}

	log.Info().Msg("servers stopped")
}

// listenWebhook mở listener cho webhook Razorpay. Khi có NGROK_AUTHTOKEN thì đi qua tunnel ngrok,
// còn lại thì nghe trực tiếp trên WEBHOOK_SERVER_ADDRESS.
func listenWebhook(ctx context.Context, config util.Config) (net.Listener, error) {
	if config.NgrokAuthToken == "" {
		listener, err := net.Listen("tcp", config.WebhookServerAddress)
		if err != nil {
			return nil, err
		}

		log.Info().Str("address", config.WebhookServerAddress).Msg("webhook server started ✅")
		return listener, nil
	}

	var endpointOpts []ngrokconfig.HTTPEndpointOption
	if config.NgrokDomain != "" {
		endpointOpts = append(endpointOpts, ngrokconfig.WithDomain(config.NgrokDomain))
	}

	tunnel, err := ngrok.Listen(ctx,
		ngrokconfig.HTTPEndpoint(endpointOpts...),
		ngrok.WithAuthtoken(config.NgrokAuthToken),
	)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", tunnel.URL()).Msg("webhook server started behind ngrok ✅")
	return tunnel, nil
}
