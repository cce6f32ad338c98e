package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/ports"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

var (
	_ ports.VehicleTypeRepository = (*Repository)(nil)
	_ ports.RecipeRepository      = (*Repository)(nil)
)

// Repository reads the fleet catalog from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// vehicleTypeRecord maps the vehicle type catalog row.
type vehicleTypeRecord struct {
	ID          int64          `gorm:"primaryKey;column:id"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	Aliases     pq.StringArray `gorm:"column:aliases;type:text[]"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (vehicleTypeRecord) TableName() string { return "vehicle_types" }

// consumptionRuleRecord maps one recipe line; supply_name is joined at read time.
type consumptionRuleRecord struct {
	ID            int64   `gorm:"primaryKey;column:id"`
	VehicleTypeID int64   `gorm:"column:vehicle_type_id;index"`
	SupplyID      int64   `gorm:"column:supply_id"`
	QuantityMl    float64 `gorm:"column:quantity_ml"`
	SupplyName    string  `gorm:"->;column:supply_name"`
}

func (consumptionRuleRecord) TableName() string { return "supply_consumptions" }

func (r *Repository) List(ctx context.Context) ([]*domain.VehicleType, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var records []vehicleTypeRecord
	if err := session.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	types := make([]*domain.VehicleType, 0, len(records))
	for i := range records {
		types = append(types, records[i].toDomain())
	}
	return types, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VehicleType, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var record vehicleTypeRecord
	if err := session.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// RulesFor loads the recipe lines for a vehicle type with the supply name
// joined in, ordered by rule id. No recipe yields an empty slice.
func (r *Repository) RulesFor(ctx context.Context, vehicleTypeID int64) ([]domain.ConsumptionRule, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var records []consumptionRuleRecord
	if err := session.
		Table("supply_consumptions").
		Select("supply_consumptions.*, supplies.name AS supply_name").
		Joins("JOIN supplies ON supplies.id = supply_consumptions.supply_id").
		Where("supply_consumptions.vehicle_type_id = ?", vehicleTypeID).
		Order("supply_consumptions.id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	rules := make([]domain.ConsumptionRule, 0, len(records))
	for _, record := range records {
		rules = append(rules, domain.ConsumptionRule{
			ID:            record.ID,
			VehicleTypeID: record.VehicleTypeID,
			SupplyID:      record.SupplyID,
			SupplyName:    record.SupplyName,
			QuantityMl:    record.QuantityMl,
		})
	}
	return rules, nil
}

func (r *Repository) session(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres fleet repository not configured")
	}
	return platformpostgres.Session(ctx, r.db), nil
}

func (r vehicleTypeRecord) toDomain() *domain.VehicleType {
	return &domain.VehicleType{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Aliases:     append([]string{}, r.Aliases...),
	}
}
