//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/devsystem/carwash-erp/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type supplyPayload struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	CurrentQuantity float64 `json:"currentQuantity"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestWashTerminalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	supplyBodyMatcher := matchers.Map{
		"id":              matchers.Like(1),
		"name":            matchers.Like(pacttest.ExampleSupplyName),
		"sku":             matchers.Term(pacttest.ExampleSupplySKU, "[A-Z0-9_]+-\\d{3}"),
		"currentQuantity": matchers.Like(50.0),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateSuppliesBaseline).
		UponReceiving("a request to restock a supply").
		WithRequest("POST", "/api/supplies/restock", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"name":            matchers.Like(pacttest.ExampleSupplyName),
				"currentQuantity": matchers.Like(50.0),
			})
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(supplyBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateSuppliesStocked).
		UponReceiving("a request to list supplies").
		WithRequest("GET", "/api/supplies").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(supplyBodyMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateSuppliesBaseline).
		UponReceiving("a wash request without a vehicle type").
		WithRequest("POST", "/api/washing-services", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"washingMinutes": matchers.Like(15),
			})
		}).
		WillRespondWith(http.StatusBadRequest, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/validation-error"),
				"title":  matchers.S("Validation Error"),
				"status": matchers.Like(http.StatusBadRequest),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newTerminalClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		restocked, err := client.Restock(ctx, pacttest.ExampleSupplyName, 50)
		if err != nil {
			return fmt.Errorf("restock supply: %w", err)
		}
		if restocked == nil || restocked.ID == 0 {
			return fmt.Errorf("expected restocked supply ID to be set")
		}

		supplies, err := client.ListSupplies(ctx)
		if err != nil {
			return fmt.Errorf("list supplies: %w", err)
		}
		if len(supplies) == 0 {
			return fmt.Errorf("expected at least one supply")
		}

		if err := client.RequestWash(ctx, 0, 15); err == nil {
			return fmt.Errorf("expected validation error for wash without vehicle type")
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusBadRequest {
			return fmt.Errorf("expected 400, got %d", apiErr.Status())
		}

		return nil
	})
	require.NoError(t, err)
}

type terminalClient struct {
	baseURL    string
	httpClient *http.Client
}

func newTerminalClient(config pactconsumer.MockServerConfig) *terminalClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &terminalClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *terminalClient) Restock(ctx context.Context, name string, quantity float64) (*supplyPayload, error) {
	body, err := json.Marshal(map[string]any{"name": name, "currentQuantity": quantity})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/supplies/restock", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload supplyPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *terminalClient) ListSupplies(ctx context.Context) ([]supplyPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/supplies", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload []supplyPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *terminalClient) RequestWash(ctx context.Context, vehicleTypeID int64, minutes int32) error {
	payload := map[string]any{"washingMinutes": minutes}
	if vehicleTypeID > 0 {
		payload["vehicleType"] = map[string]any{"id": vehicleTypeID}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/washing-services", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
