package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/services"
	"github.com/diegosantosouza/projeto-teste-truther/internal/application/usecases/coin"
	"github.com/diegosantosouza/projeto-teste-truther/internal/application/usecases/user"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/config"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/database/mongodb"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/providers/coingecko"
	mongorepo "github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/repositories/mongodb"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/web/handlers"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/web/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := logging.Setup(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputFile:  cfg.Logging.OutputFile,
		Environment: cfg.App.Environment,
	}); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer logging.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logging.Info(ctx, "starting truther API", logging.Fields{
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	})

	// Storage.
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logging.ErrorWithError(ctx, "failed to connect to mongodb", err, nil)
		os.Exit(1)
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), client); err != nil {
			logging.WarnWithError(context.Background(), "failed to disconnect from mongodb", err, nil)
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logging.ErrorWithError(ctx, "failed to ensure indexes", err, nil)
		os.Exit(1)
	}

	coinRepo := mongorepo.NewCoinRepository(db)
	userRepo := mongorepo.NewUserRepository(db)

	// Market data provider, built once and shared. Misconfiguration is fatal
	// at startup instead of surfacing on the first lookup.
	marketData, err := coingecko.NewMarketData(cfg.Coingecko)
	if err != nil {
		logging.ErrorWithError(ctx, "failed to build market data provider", err, nil)
		os.Exit(1)
	}

	// Use cases.
	showCoin := coin.NewShowUseCase(coinRepo, marketData)
	listCoins := coin.NewListUseCase(coinRepo)

	passwords := services.NewPasswordService()
	createUser := user.NewCreateUseCase(userRepo, passwords)
	showUser := user.NewShowUseCase(userRepo)
	listUsers := user.NewListUseCase(userRepo)
	updateUser := user.NewUpdateUseCase(userRepo, passwords)
	deleteUser := user.NewDeleteUseCase(userRepo)

	// HTTP layer.
	router := server.NewRouter(server.Handlers{
		Coins: handlers.NewCoinHandler(showCoin, listCoins),
		Users: handlers.NewUserHandler(createUser, showUser, listUsers, updateUser, deleteUser),
		Health: handlers.NewHealthHandler(cfg.App.Environment, map[string]handlers.ReadinessCheck{
			"mongodb": func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			"coingecko": func(ctx context.Context) error {
				if !marketData.Ping(ctx) {
					return errors.New("provider unreachable")
				}
				return nil
			},
		}),
	})

	srv := server.New(router, cfg.Server.Port)

	if cfg.Refresh.Enabled {
		refresher := services.NewRefresher(
			func(ctx context.Context, coinID entities.CoinID) (*entities.Coin, error) {
				return showCoin.Execute(ctx, coin.ShowInput{CoinID: coinID})
			},
			cfg.Refresh.Interval,
			cfg.Refresh.Concurrency,
		)
		go refresher.Run(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithError(ctx, "HTTP server failed", err, nil)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logging.Info(ctx, "shutdown signal received", logging.Fields{"signal": sig.String()})
	case <-ctx.Done():
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logging.ErrorWithError(shutdownCtx, "server forced to shut down", err, nil)
	}

	logging.Info(context.Background(), "shutdown complete", nil)
}
