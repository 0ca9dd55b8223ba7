package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

const serviceName = "storefront"

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	var logger zerolog.Logger
	if cfg.GoEnv == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Str("service", serviceName).Logger()
}

func newTxManager(cfg config.Config) (repository.TransactionManager, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return infraRepo.NewTxManagerMemory(db.NewStore()), nil
	}

	gormDB, err := db.OpenSQLite()
	if err != nil {
		return nil, err
	}
	return infraRepo.NewTxManagerGorm(gormDB), nil
}

func main() {
	//.env は任意
	if err := config.LoadDotEnv(".env", "../.env"); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	//メトリクス（プロセス/Goランタイム + 業務カウンター）
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	//テーブルとTx（再起動で消える）
	tx, err := newTxManager(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("store init failed")
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(tx, cfg.UnitPrice, m)
	checkoutUC := usecase.NewCheckoutUsecase(tx, idGen, clock, cfg.NthOrder, m)
	adminUC := usecase.NewAdminUsecase(tx, clock, m)

	//Handler生成
	e := server.New(logger, reg, server.Handlers{
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Admin:    handler.NewAdminHandler(adminUC),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Server起動
	logger.Info().Str("addr", cfg.Addr()).Str("store", cfg.StoreDriver).Int64("nth_order", cfg.NthOrder).Msg("server running")
	if err := server.Start(ctx, e, cfg.Addr(), cfg.ShutdownTimeout); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("server stopped")
}
