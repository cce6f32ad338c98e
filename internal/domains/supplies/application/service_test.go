package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
)

type fakeSupplyRepo struct {
	supplies map[int64]*domain.Supply
	nextID   int64
}

func newFakeSupplyRepo() *fakeSupplyRepo {
	return &fakeSupplyRepo{supplies: map[int64]*domain.Supply{}}
}

func (f *fakeSupplyRepo) Save(_ context.Context, supply *domain.Supply) (*domain.Supply, error) {
	clone := *supply
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.supplies[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (f *fakeSupplyRepo) SaveAll(ctx context.Context, supplies []*domain.Supply) error {
	for _, supply := range supplies {
		if _, err := f.Save(ctx, supply); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeSupplyRepo) GetByID(_ context.Context, id int64) (*domain.Supply, error) {
	if supply, ok := f.supplies[id]; ok {
		copy := *supply
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeSupplyRepo) FindByName(_ context.Context, name string) (*domain.Supply, error) {
	for _, supply := range f.supplies {
		if strings.EqualFold(supply.Name, name) {
			copy := *supply
			return &copy, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeSupplyRepo) List(_ context.Context) ([]*domain.Supply, error) {
	var list []*domain.Supply
	for _, supply := range f.supplies {
		copy := *supply
		list = append(list, &copy)
	}
	return list, nil
}

func TestRestock_NewSupplyDerivesSKU(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())

	supply, err := svc.Restock(context.Background(), ports.RestockInput{Name: "Engine Soap", Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, "ENGINE_SOA-001", supply.SKU)
	assert.Equal(t, 20.0, supply.CurrentQuantity)
	assert.NotZero(t, supply.ID)
}

func TestRestock_MergeIsCumulativeAndCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())

	_, err := svc.Restock(context.Background(), ports.RestockInput{Name: "Soap", Quantity: 5})
	require.NoError(t, err)
	merged, err := svc.Restock(context.Background(), ports.RestockInput{Name: "soap", Quantity: 3, SKU: "IGNORED-999"})
	require.NoError(t, err)

	assert.Equal(t, 8.0, merged.CurrentQuantity)
	assert.Equal(t, "SOAP-001", merged.SKU, "supplied SKU must be ignored on merge")

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRestock_EmptyNameRejectedBeforeAnyWrite(t *testing.T) {
	repo := newFakeSupplyRepo()
	svc := NewService(repo)

	_, err := svc.Restock(context.Background(), ports.RestockInput{Name: "  ", Quantity: 5})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)
	assert.Empty(t, repo.supplies)
}

func TestResetAll_ZeroesQuantitiesKeepsIdentity(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())
	_, err := svc.Restock(context.Background(), ports.RestockInput{Name: "Soap", Quantity: 5})
	require.NoError(t, err)
	_, err = svc.Restock(context.Background(), ports.RestockInput{Name: "Bleach", Quantity: 9, SKU: "BLCH-7"})
	require.NoError(t, err)

	count, err := svc.ResetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, supply := range all {
		assert.Equal(t, 0.0, supply.CurrentQuantity)
		assert.NotEmpty(t, supply.Name)
		assert.NotEmpty(t, supply.SKU)
	}
}

func TestDebit_ClampsAtZero(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())
	supply, err := svc.Restock(context.Background(), ports.RestockInput{Name: "Disinfectant", Quantity: 0.3})
	require.NoError(t, err)

	newQty, err := svc.Debit(context.Background(), supply.ID, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, newQty)
}

func TestCredit_AddsUnconditionally(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())
	supply, err := svc.Restock(context.Background(), ports.RestockInput{Name: "Disinfectant", Quantity: 1})
	require.NoError(t, err)

	newQty, err := svc.Credit(context.Background(), supply.ID, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1.25, newQty)
}

func TestDebit_UnknownSupply(t *testing.T) {
	svc := NewService(newFakeSupplyRepo())
	_, err := svc.Debit(context.Background(), 42, 1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
