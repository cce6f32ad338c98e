package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	fleethttp "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/http"
	fleetmemory "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/memory"
	fleetpostgres "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/persistence/postgres"
	fleetapp "github.com/devsystem/carwash-erp/internal/domains/fleet/application"
	fleetdomain "github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	fleetports "github.com/devsystem/carwash-erp/internal/domains/fleet/ports"

	supplieshttp "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/http"
	suppliesmemory "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/memory"
	suppliespostgres "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/persistence/postgres"
	suppliesapp "github.com/devsystem/carwash-erp/internal/domains/supplies/application"
	suppliesports "github.com/devsystem/carwash-erp/internal/domains/supplies/ports"

	washeshttp "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/http"
	washesmemory "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/memory"
	washesobs "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/observability"
	washespostgres "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/persistence/postgres"
	"github.com/devsystem/carwash-erp/internal/domains/washes/adapters/recipes"
	washesworkflows "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/workflows"
	washesapp "github.com/devsystem/carwash-erp/internal/domains/washes/application"
	washesports "github.com/devsystem/carwash-erp/internal/domains/washes/ports"

	sealshttp "github.com/devsystem/carwash-erp/internal/domains/seals/adapters/http"
	sealsmemory "github.com/devsystem/carwash-erp/internal/domains/seals/adapters/memory"
	sealspostgres "github.com/devsystem/carwash-erp/internal/domains/seals/adapters/persistence/postgres"
	sealsapp "github.com/devsystem/carwash-erp/internal/domains/seals/application"
	sealsports "github.com/devsystem/carwash-erp/internal/domains/seals/ports"

	"github.com/devsystem/carwash-erp/internal/platform/memtx"
	"github.com/devsystem/carwash-erp/internal/platform/migrations"
	platformobservability "github.com/devsystem/carwash-erp/internal/platform/observability"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

// Run boots the car wash HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "carwash-api"
	cfg := LoadConfig()

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, closeDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer closeDB()

	repos, err := buildRepositories(ctx, db, cfg, logger)
	if err != nil {
		return err
	}

	ledger := suppliesapp.NewService(repos.supplies)
	fleetService := fleetapp.NewService(repos.vehicleTypes, repos.recipes)
	sealService := sealsapp.NewService(repos.seals)

	washCore := washesapp.NewService(repos.washes, ledger, recipes.NewFleetRecipeSource(repos.recipes), repos.uow)
	washService := washesobs.New(
		washCore,
		washesobs.WithLogger(logger),
		washesobs.WithTracer(instruments.Tracer("internal.washes.application")),
		washesobs.WithMeter(instruments.Meter("internal.washes.application")),
	)

	var washWorkflows washesports.WorkflowOrchestrator
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running wash accounting inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		washWorkflows = washesworkflows.NewTemporalWashWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	group := router.Group("/api")
	supplieshttp.NewSupplyAPI(ledger).Register(group)
	fleethttp.NewFleetAPI(fleetService).Register(group)
	washeshttp.NewWashAPI(washService, washWorkflows).Register(group)
	sealshttp.NewSealAPI(sealService).Register(group)

	addr := ":" + cfg.Port
	logger.Info("car wash API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("car wash API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// repositories bundles the per-context persistence ports plus the unit of
// work that brackets wash accounting.
type repositories struct {
	supplies     suppliesports.Repository
	vehicleTypes fleetports.VehicleTypeRepository
	recipes      fleetports.RecipeRepository
	washes       washesports.Repository
	seals        sealsports.Repository
	uow          washesports.UnitOfWork
}

func buildRepositories(ctx context.Context, db *gorm.DB, cfg Config, logger *slog.Logger) (repositories, error) {
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return repositories{}, fmt.Errorf("failed to run migrations: %w", err)
		}
		fleetRepo := fleetpostgres.NewRepository(db)
		logger.Info("repositories configured with postgres")
		return repositories{
			supplies:     suppliespostgres.NewRepository(db),
			vehicleTypes: fleetRepo,
			recipes:      fleetRepo,
			washes:       washespostgres.NewRepository(db),
			seals:        sealspostgres.NewRepository(db),
			uow:          platformpostgres.NewTxManager(db),
		}, nil
	}

	suppliesRepo := suppliesmemory.NewRepository()
	fleetRepo := fleetmemory.NewRepository()
	washRepo := washesmemory.NewRepository()
	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, suppliesRepo, fleetRepo); err != nil {
			return repositories{}, fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info("in-memory repositories seeded with demo catalog")
	}
	return repositories{
		supplies:     suppliesRepo,
		vehicleTypes: fleetRepo,
		recipes:      fleetRepo,
		washes:       washRepo,
		seals:        sealsmemory.NewRepository(),
		uow:          memtx.NewUnitOfWork(suppliesRepo, washRepo),
	}, nil
}

// seedDemoData loads a small catalog so the in-memory mode is usable out of
// the box: three supplies, two vehicle types, and a recipe per type.
func seedDemoData(ctx context.Context, supplies *suppliesmemory.Repository, fleet *fleetmemory.Repository) error {
	stock := []struct {
		name     string
		quantity float64
	}{
		{"Industrial Disinfectant", 50},
		{"Engine Degreaser", 40},
		{"Chlorine Bleach", 30},
	}
	ledger := suppliesapp.NewService(supplies)
	supplyIDs := make(map[string]int64, len(stock))
	for _, item := range stock {
		saved, err := ledger.Restock(ctx, suppliesports.RestockInput{Name: item.name, Quantity: item.quantity})
		if err != nil {
			return err
		}
		supplyIDs[item.name] = saved.ID
	}

	fleet.SeedVehicleType(fleetdomain.VehicleType{
		ID:          1,
		Name:        "Sedan",
		Description: "Standard passenger car",
		Aliases:     []string{"car", "hatchback"},
	})
	fleet.SeedVehicleType(fleetdomain.VehicleType{
		ID:          2,
		Name:        "Truck",
		Description: "Heavy cargo vehicle",
		Aliases:     []string{"lorry", "semi"},
	})

	recipes := []struct {
		vehicleTypeID int64
		supplyName    string
		quantityMl    float64
	}{
		{1, "Industrial Disinfectant", 250},
		{1, "Chlorine Bleach", 100},
		{2, "Industrial Disinfectant", 500},
		{2, "Engine Degreaser", 400},
		{2, "Chlorine Bleach", 200},
	}
	for i, recipe := range recipes {
		fleet.SeedRule(fleetdomain.ConsumptionRule{
			ID:            int64(i + 1),
			VehicleTypeID: recipe.vehicleTypeID,
			SupplyID:      supplyIDs[recipe.supplyName],
			SupplyName:    recipe.supplyName,
			QuantityMl:    recipe.quantityMl,
		})
	}
	return nil
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
