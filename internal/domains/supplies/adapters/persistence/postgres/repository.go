package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists supplies in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed supply repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// supplyRecord maps the supply aggregate to a relational table.
type supplyRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Name            string    `gorm:"column:name;index"`
	SKU             string    `gorm:"column:sku;type:varchar(32);uniqueIndex"`
	CurrentQuantity float64   `gorm:"column:current_quantity"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (supplyRecord) TableName() string { return "supplies" }

// Save inserts or updates a supply.
func (r *Repository) Save(ctx context.Context, supply *domain.Supply) (*domain.Supply, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, errors.New("supply is nil")
	}
	record := toRecord(supply)
	if err := session.Save(&record).Error; err != nil {
		return nil, err
	}
	supply.ID = record.ID
	return record.toDomain(), nil
}

// SaveAll persists the batch in one transaction.
func (r *Repository) SaveAll(ctx context.Context, supplies []*domain.Supply) error {
	session, err := r.session(ctx)
	if err != nil {
		return err
	}
	records := make([]supplyRecord, 0, len(supplies))
	for _, supply := range supplies {
		records = append(records, toRecord(supply))
	}
	if len(records) == 0 {
		return nil
	}
	return session.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Save(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID fetches a supply by identifier. Inside a unit of work the row is
// locked FOR UPDATE so concurrent debits/credits serialize instead of losing updates.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Supply, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var record supplyRecord
	query := session
	if platformpostgres.TxFrom(ctx) != nil {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByName matches the natural key case-insensitively.
func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Supply, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var record supplyRecord
	query := session
	if platformpostgres.TxFrom(ctx) != nil {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.First(&record, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all supplies ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.Supply, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var records []supplyRecord
	if err := session.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	supplies := make([]*domain.Supply, 0, len(records))
	for i := range records {
		supplies = append(supplies, records[i].toDomain())
	}
	return supplies, nil
}

func (r *Repository) session(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres supply repository not configured")
	}
	return platformpostgres.Session(ctx, r.db), nil
}

func toRecord(supply *domain.Supply) supplyRecord {
	return supplyRecord{
		ID:              supply.ID,
		Name:            supply.Name,
		SKU:             supply.SKU,
		CurrentQuantity: supply.CurrentQuantity,
	}
}

func (r supplyRecord) toDomain() *domain.Supply {
	return &domain.Supply{
		ID:              r.ID,
		Name:            r.Name,
		SKU:             r.SKU,
		CurrentQuantity: r.CurrentQuantity,
	}
}
