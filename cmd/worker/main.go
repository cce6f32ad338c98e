package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	suppliesmemory "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/memory"
	suppliespostgres "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/persistence/postgres"
	suppliesapp "github.com/devsystem/carwash-erp/internal/domains/supplies/application"

	fleetmemory "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/memory"
	fleetpostgres "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/persistence/postgres"
	fleetports "github.com/devsystem/carwash-erp/internal/domains/fleet/ports"

	washesmemory "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/memory"
	washesobs "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/observability"
	washespostgres "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/persistence/postgres"
	"github.com/devsystem/carwash-erp/internal/domains/washes/adapters/recipes"
	washesapp "github.com/devsystem/carwash-erp/internal/domains/washes/application"
	washesports "github.com/devsystem/carwash-erp/internal/domains/washes/ports"

	"github.com/devsystem/carwash-erp/internal/platform/memtx"
	platformobservability "github.com/devsystem/carwash-erp/internal/platform/observability"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
	washactivities "github.com/devsystem/carwash-erp/internal/platform/temporal/activities/washes"
	washworkflows "github.com/devsystem/carwash-erp/internal/platform/temporal/workflows/washes"
)

func main() {
	ctx := context.Background()
	const serviceName = "carwash-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	washService, cleanupRepos := buildWashService(ctx, logger, instruments)
	defer cleanupRepos()
	activities := washactivities.NewActivities(washService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, washworkflows.WashAccountingTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(washworkflows.WashAccountingWorkflow, workflow.RegisterOptions{Name: washworkflows.WashAccountingWorkflowName})
	w.RegisterActivityWithOptions(activities.AccountWash, activity.RegisterOptions{Name: washactivities.AccountWashActivityName})

	logger.Info("worker listening", slog.String("taskQueue", washworkflows.WashAccountingTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

// buildWashService assembles the accounting engine the worker activities call,
// backed by postgres when POSTGRES_DSN is set and memory otherwise.
func buildWashService(ctx context.Context, logger *slog.Logger, instruments *platformobservability.Instruments) (washesports.Service, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)

	var (
		core       *washesapp.Service
		recipeRepo fleetports.RecipeRepository
	)
	if db != nil {
		recipeRepo = fleetpostgres.NewRepository(db)
		core = washesapp.NewService(
			washespostgres.NewRepository(db),
			suppliesapp.NewService(suppliespostgres.NewRepository(db)),
			recipes.NewFleetRecipeSource(recipeRepo),
			platformpostgres.NewTxManager(db),
		)
		logger.Info("worker repositories configured with postgres")
	} else {
		suppliesRepo := suppliesmemory.NewRepository()
		washRepo := washesmemory.NewRepository()
		recipeRepo = fleetmemory.NewRepository()
		core = washesapp.NewService(
			washRepo,
			suppliesapp.NewService(suppliesRepo),
			recipes.NewFleetRecipeSource(recipeRepo),
			memtx.NewUnitOfWork(suppliesRepo, washRepo),
		)
		logger.Warn("worker running against in-memory repositories")
	}

	service := washesobs.New(
		core,
		washesobs.WithLogger(logger),
		washesobs.WithTracer(instruments.Tracer("internal.washes.application")),
		washesobs.WithMeter(instruments.Meter("internal.washes.application")),
	)
	return service, cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
