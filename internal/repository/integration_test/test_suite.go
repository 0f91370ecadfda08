//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	migrator "lavka/internal/pkg/postgres"
	"lavka/pkg/logger/zap_adapter"
	"lavka/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

// GetPool один контейнер postgres на весь пакет тестов, схема накатывается миграциями сервиса.
// Контейнер убирает ryuk после выхода тестового бинарника.
func GetPool() *pgxpool.Pool {
	suiteOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("lavka_test"),
			postgres.WithUsername("test_user"),
			postgres.WithPassword("test_pass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres testcontainer: %v", err)
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get connection string from container: %v", err)
		}

		pool, err := pgxpool.New(ctx, connStr)
		if err != nil {
			log.Fatalf("failed to create pgx pool: %v", err)
		}

		if err := migrator.Migrate(ctx, zap_adapter.NewNop(), pool); err != nil {
			pool.Close()
			log.Fatalf("failed to migrate test database: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	GetPool()
	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE assignment_orders, assignments, orders, couriers RESTART IDENTITY CASCADE;
		ALTER SEQUENCE group_order_id_seq RESTART;
	`)
	require.NoError(t, err)
}
