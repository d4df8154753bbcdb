package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"todo-server/internal/app/logger"
	"todo-server/internal/app/routes"
	"todo-server/internal/db"
	"todo-server/internal/domain/repos"
	"todo-server/internal/domain/services"
	"todo-server/internal/utils"
)

const shutdownTimeout = 30 * time.Second

var (
	serviceAddress = "0.0.0.0:8080"
	dbConfig       db.Config
	skipMigrations bool

	rootCmd = &cobra.Command{
		Use:   "todo-server [address]",
		Short: "Serve to-do task records over HTTP backed by Postgres",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				serviceAddress = args[0]
			}
			run()
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&dbConfig.Host, "db-host", "", "Address to contact the Postgres server on (required)")
	rootCmd.Flags().Uint16Var(&dbConfig.Port, "db-port", 5432, "Port to contact the Postgres server on")
	rootCmd.Flags().StringVar(&dbConfig.Name, "db-name", "", "Name of the database to open in Postgres")
	rootCmd.Flags().StringVar(&dbConfig.User, "db-user", "postgres", "Username to access the Postgres database as")
	rootCmd.Flags().StringVar(&dbConfig.PasswordFile, "db-password-file", "", "File to read the database password from (connects without password by default)")
	rootCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Skip running the database migrations on startup")
	rootCmd.MarkFlagRequired("db-host")
}

func run() {
	// Init logging
	logger.InitLogging()
	log.Info("Starting application")

	ctx := context.Background()

	// Setup DB connection
	pool, err := db.Connect(ctx, dbConfig)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to connect to database")
	}
	log.Info("Database connection pool established")

	// Run database migrations, if enabled
	if skipMigrations {
		log.Info("Skipping database migrations")
	} else {
		if err := db.Migrate(ctx, pool); err != nil {
			log.WithFields(log.Fields{"err": err}).Fatal("Migrations run failed")
		}
		log.Info("Database migrations complete")
	}

	// Setup deps
	tasksRepo := repos.NewTasksRepo(pool)
	tasksService := services.NewTasksService(tasksRepo)

	// Register validators
	utils.RegisterValidators()

	// Register all app routes
	r := routes.SetupDefaultRouter()
	routes.RegisterTaskRoutes(r, tasksService)

	srv := &http.Server{Addr: serviceAddress, Handler: r}
	go func() {
		log.WithFields(log.Fields{"host": serviceAddress}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithFields(log.Fields{"err": err}).Fatal("Application serve failure")
		}
	}()

	// Drain in-flight requests on SIGINT/SIGTERM, then release the pool.
	wait := gfshutdown.GracefulShutdown(ctx, shutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
		"db-pool": func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})
	os.Exit(<-wait)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
