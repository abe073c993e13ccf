// File: app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"rpbank/config"
	"rpbank/db"
	"rpbank/handler"
	"rpbank/logger"
	"rpbank/notify"
	"rpbank/repository"
	"rpbank/router"
	"rpbank/scheduler"
	"rpbank/service"
	"rpbank/store"
	"sync"
	"syscall"
	"time"
)

// App is the fully wired ledger: services, scheduler and HTTP router.
type App struct {
	Router    http.Handler
	Auth      *service.AuthService
	Accounts  *service.AccountService
	Loans     *service.LoanService
	Payroll   *service.PayrollService
	Shop      *service.ShopService
	Scheduler *scheduler.Scheduler
}

// New loads every document from s and wires the layers together. The
// scheduler is built but not started.
func New(ctx context.Context, cfg config.Config, s store.DocumentStore, notifier notify.Notifier) (*App, error) {
	accountRepo, err := repository.NewAccountRepository(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	loanRepo, err := repository.NewLoanRepository(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("load loans: %w", err)
	}
	deletionRepo, err := repository.NewDeletionRepository(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("load deletion records: %w", err)
	}
	inventoryRepo, err := repository.NewInventoryRepository(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("load inventories: %w", err)
	}

	// One lock for the whole ledger: every service mutates the same documents.
	mu := &sync.Mutex{}
	accountService := service.NewAccountService(mu, accountRepo, deletionRepo, cfg.Economy)
	loanService := service.NewLoanService(mu, accountRepo, loanRepo)
	payrollService := service.NewPayrollService(accountService, cfg.Economy)
	shopService := service.NewShopService(accountService, inventoryRepo, cfg.Economy.Shop)
	authService := service.NewAuthService(cfg.JWT.SecretKey)

	sched, err := scheduler.New(loanService, notifier, cfg.Scheduler, nil)
	if err != nil {
		return nil, err
	}

	r := router.NewRouter(authService, router.Handlers{
		Accounts:     handler.NewAccountHandler(accountService),
		Transactions: handler.NewTransactionHandler(accountService),
		Loans:        handler.NewLoanHandler(loanService),
		Economy:      handler.NewEconomyHandler(payrollService, shopService),
	})

	return &App{
		Router:    r,
		Auth:      authService,
		Accounts:  accountService,
		Loans:     loanService,
		Payroll:   payrollService,
		Shop:      shopService,
		Scheduler: sched,
	}, nil
}

// OpenStore returns the document store selected by storage.driver and a
// function releasing its resources.
func OpenStore(cfg config.Config) (store.DocumentStore, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		logger.Log.Warn("Using in-memory storage, nothing will be persisted")
		return store.NewMemoryStore(), func() {}, nil
	case "postgres":
		conn, err := db.Connect()
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store.NewPostgresStore(conn), func() { conn.Close() }, nil
	default:
		s, err := store.NewJSONStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Log.WithField("data_dir", cfg.Storage.DataDir).Info("Using JSON file storage")
		return s, func() {}, nil
	}
}

// NewNotifier publishes installment events to Redis when enabled and falls
// back to logging otherwise.
func NewNotifier(ctx context.Context, cfg config.Config) (notify.Notifier, func(), error) {
	if !cfg.Redis.Enabled {
		return notify.LogNotifier{}, func() {}, nil
	}
	rdb, err := db.ConnectRedis(ctx)
	if err != nil {
		return nil, nil, err
	}
	return notify.NewRedisNotifier(rdb, cfg.Redis.Channel), func() { rdb.Close() }, nil
}

func Run() {
	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Log.WithError(err).Warn("Invalid log level, keeping info")
	}
	logger.Log.Info("Configuration loaded successfully")

	ctx := context.Background()

	docs, closeStore, err := OpenStore(cfg)
	if err != nil {
		logger.Log.Fatalf("Error opening storage: %v", err)
	}
	defer closeStore()

	notifier, closeNotifier, err := NewNotifier(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer closeNotifier()

	a, err := New(ctx, cfg, docs, notifier)
	if err != nil {
		logger.Log.Fatalf("Error building application: %v", err)
	}

	if err := a.Scheduler.Start(); err != nil {
		logger.Log.Fatalf("Error starting scheduler: %v", err)
	}

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	select {
	case <-a.Scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Log.Warn("Installment sweep still running at shutdown")
	}

	logger.Log.Info("Server exited properly")
}
