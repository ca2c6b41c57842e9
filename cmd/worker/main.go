package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/care-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/care-scheduler/internal/db"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	infraRepo "github.com/BruksfildServices01/care-scheduler/internal/infra/repository"
	ucPayment "github.com/BruksfildServices01/care-scheduler/internal/usecase/payment"
	"github.com/BruksfildServices01/care-scheduler/internal/worker"
)

// Worker de timeout de pagamento: varre os prazos vencidos no Redis e
// cancela os agendamentos ainda pendentes.
func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	transactionRepo := infraRepo.NewTransactionGormRepository(db)
	dispatcher := events.NewDispatcher(events.NewAuditSink(db), logger)

	cancelUC := ucPayment.NewCancelOnTimeout(appointmentRepo, transactionRepo, dispatcher)

	store := worker.NewRedisExpiryStore(rdb)
	watcher := worker.NewWatcher(store, cancelUC, time.Minute, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("payment timeout worker running")
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("watcher stopped", zap.Error(err))
	}
}
