package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	application "lavka/internal/app"
	"lavka/internal/pkg/config"
	"lavka/internal/pkg/postgres"
	"lavka/pkg/logger"
	"lavka/pkg/logger/zap_adapter"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Fills a local lavka database with fake couriers and orders",
	Long: `seeder generates couriers and orders through the service layer, builds daily assignments
for them and publishes order completion events for the worker.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("postgres-host", "localhost", "Postgres host")
	flags.String("postgres-port", "5432", "Postgres port")
	flags.String("postgres-user", "postgres", "Postgres user")
	flags.String("postgres-password", "", "Postgres password")
	flags.String("postgres-db", "lavka", "Postgres database")
	flags.String("postgres-sslmode", "disable", "Postgres sslmode")
	flags.Int("postgres-max-conns", 4, "Postgres pool size")

	cobra.CheckErr(viper.BindPFlags(flags))

	rootCmd.AddCommand(
		migrateCmd(),
		couriersCmd(),
		ordersCmd(),
		assignCmd(),
		completeCmd(),
	)
}

// initConfig флаг postgres-host можно задать и переменной POSTGRES_HOST, как у сервиса.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type seeder struct {
	log  logger.Logger
	pool *pgxpool.Pool
	app  *application.SeederApp
}

// openSeeder поднимает логгер, пул и сервисы. close освобождает все, что успело открыться.
func openSeeder(ctx context.Context) (*seeder, func(), error) {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, zapLogger, databaseConfig())
	if err != nil {
		_ = zapLogger.Sync()
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	app, err := application.InitializeSeederApp(pool, pgxv5.DefaultCtxGetter)
	if err != nil {
		pool.Close()
		_ = zapLogger.Sync()
		return nil, nil, fmt.Errorf("business logic: %w", err)
	}

	closeFn := func() {
		pool.Close()
		_ = zapLogger.Sync()
	}

	return &seeder{log: zapLogger, pool: pool, app: app}, closeFn, nil
}

func databaseConfig() *config.Database {
	return &config.Database{
		Host:     viper.GetString("postgres-host"),
		Port:     viper.GetString("postgres-port"),
		User:     viper.GetString("postgres-user"),
		Password: viper.GetString("postgres-password"),
		DBName:   viper.GetString("postgres-db"),
		SSLMode:  viper.GetString("postgres-sslmode"),
		MaxConns: viper.GetInt("postgres-max-conns"),
	}
}
