//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/devsystem/carwash-erp/test/pact"

	fleethttp "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/http"
	fleetmemory "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/memory"
	fleetapp "github.com/devsystem/carwash-erp/internal/domains/fleet/application"
	supplieshttp "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/http"
	suppliesmemory "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/memory"
	suppliesapp "github.com/devsystem/carwash-erp/internal/domains/supplies/application"
	suppliesports "github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
	washeshttp "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/http"
	washesmemory "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/memory"
	"github.com/devsystem/carwash-erp/internal/domains/washes/adapters/recipes"
	washesapp "github.com/devsystem/carwash-erp/internal/domains/washes/application"
	"github.com/devsystem/carwash-erp/internal/platform/memtx"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestCarwashProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateSuppliesBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateSuppliesStocked: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedSupply(t)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	ledger *suppliesapp.Service
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	suppliesRepo := suppliesmemory.NewRepository()
	fleetRepo := fleetmemory.NewRepository()
	washRepo := washesmemory.NewRepository()

	ledger := suppliesapp.NewService(suppliesRepo)
	fleetService := fleetapp.NewService(fleetRepo, fleetRepo)
	washService := washesapp.NewService(
		washRepo,
		ledger,
		recipes.NewFleetRecipeSource(fleetRepo),
		memtx.NewUnitOfWork(suppliesRepo, washRepo),
	)

	router := gin.New()
	router.Use(gin.Recovery())
	group := router.Group("/api")
	supplieshttp.NewSupplyAPI(ledger).Register(group)
	fleethttp.NewFleetAPI(fleetService).Register(group)
	washeshttp.NewWashAPI(washService, nil).Register(group)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		ledger: ledger,
		server: server,
	}
}

func (a *contractProviderApp) seedSupply(t testing.TB) {
	t.Helper()
	_, err := a.ledger.Restock(context.Background(), suppliesports.RestockInput{
		Name:     pacttest.ExampleSupplyName,
		Quantity: 50,
	})
	require.NoError(t, err)
}
