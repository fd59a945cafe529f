package routes

import (
	"context"
	"fmt"
	"log"
	"time"

	"gestao_contratos/internal/adapter/persistence/repository"
	"gestao_contratos/internal/infrastructure/config"
	"gestao_contratos/internal/infrastructure/database"
	"gestao_contratos/internal/usecase"
	"gestao_contratos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const connectTimeout = 15 * time.Second

// application holds the use cases shared by the handlers and the jobs.
type application struct {
	cfg   config.Config
	cache *usecase.BalanceCache

	contracts  *usecase.ContractUseCase
	balances   *usecase.BalanceUseCase
	amendments *usecase.AmendmentUseCase
	requests   *usecase.OrderRequestUseCase
	orders     *usecase.OrderUseCase
	alerts     *usecase.AlertUseCase

	closers []func()
}

func newApplication(cfg config.Config) (*application, error) {
	app := &application{cfg: cfg}

	store, err := app.openStore()
	if err != nil {
		app.Close()
		return nil, err
	}

	loc := cfg.Ledger.Location
	if loc == nil {
		loc = time.UTC
	}
	app.cache = usecase.NewBalanceCache(cfg.Ledger.AlertCacheTTL)
	opts := usecase.Options{
		ExpiringWindow:     cfg.Ledger.ExpiringWindow,
		MaxConflictRetries: cfg.Ledger.ConflictMaxRetries,
		Now:                func() time.Time { return time.Now().In(loc) },
		OnLedgerChange:     app.cache.Invalidate,
	}

	app.contracts = usecase.NewContractUseCase(store, opts)
	app.balances = usecase.NewBalanceUseCase(store, app.cache, opts)
	app.amendments = usecase.NewAmendmentUseCase(store, opts)
	app.requests = usecase.NewOrderRequestUseCase(store, opts)
	app.orders = usecase.NewOrderUseCase(store, opts)
	app.alerts = usecase.NewAlertUseCase(store, app.cache, cfg.Ledger.AlertThreshold, opts)
	return app, nil
}

// openStore selects the ledger backend from STORE_BACKEND.
func (a *application) openStore() (interfaces.ILedgerStore, error) {
	switch a.cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := database.OpenPostgres(a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return a.gormStore(db)
	case config.StoreBackendSQLite:
		db, err := database.OpenSQLite(a.cfg.Database.SQLitePath, a.cfg.Database.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return a.gormStore(db)
	case config.StoreBackendDynamoDB:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		ddb, err := database.ConnectDynamoDB(ctx, a.cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Printf("[store] dynamodb table=%s", a.cfg.DynamoDB.LedgerTable)
		return repository.NewLedgerDynamoRepository(ddb, a.cfg.DynamoDB.LedgerTable), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", a.cfg.StoreBackend)
	}
}

func (a *application) gormStore(db *gorm.DB) (interfaces.ILedgerStore, error) {
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}
	if a.cfg.Database.AutoMigrate {
		if err := database.Migrate(db, repository.LedgerModels()...); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	log.Printf("[store] %s ready auto_migrate=%t", a.cfg.StoreBackend, a.cfg.Database.AutoMigrate)
	return repository.NewLedgerGormRepository(db), nil
}

// Close releases resources in reverse order of acquisition.
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
