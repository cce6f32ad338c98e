package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists washing services in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed wash repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// washingServiceRecord maps the wash aggregate to a relational table.
type washingServiceRecord struct {
	ID                 int64     `gorm:"primaryKey;column:id"`
	VehicleTypeID      int64     `gorm:"column:vehicle_type_id;index"`
	WashingMinutes     int32     `gorm:"column:washing_minutes"`
	DisinfectantUsedMl float64   `gorm:"column:disinfectant_used_ml"`
	DegreaserUsedMl    float64   `gorm:"column:degreaser_used_ml"`
	BleachUsedMl       float64   `gorm:"column:bleach_used_ml"`
	WaterUsedL         float64   `gorm:"column:water_used_l"`
	CreatedAt          time.Time `gorm:"column:created_at;index"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (washingServiceRecord) TableName() string { return "washing_services" }

// Save inserts or updates a wash record.
func (r *Repository) Save(ctx context.Context, service *domain.WashingService) (*domain.WashingService, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.New("washing service is nil")
	}
	record := toRecord(service)
	if err := session.Save(&record).Error; err != nil {
		return nil, err
	}
	service.ID = record.ID
	return record.toDomain(), nil
}

// GetByID fetches a wash record by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WashingService, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var record washingServiceRecord
	if err := session.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a wash record by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	session, err := r.session(ctx)
	if err != nil {
		return err
	}
	result := session.Delete(&washingServiceRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// DeleteAll removes every wash record and reports how many were dropped.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	session, err := r.session(ctx)
	if err != nil {
		return 0, err
	}
	result := session.Where("1 = 1").Delete(&washingServiceRecord{})
	return result.RowsAffected, result.Error
}

// List returns all wash records ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.WashingService, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var records []washingServiceRecord
	if err := session.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	services := make([]*domain.WashingService, 0, len(records))
	for i := range records {
		services = append(services, records[i].toDomain())
	}
	return services, nil
}

func (r *Repository) session(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres wash repository not configured")
	}
	return platformpostgres.Session(ctx, r.db), nil
}

func toRecord(service *domain.WashingService) washingServiceRecord {
	return washingServiceRecord{
		ID:                 service.ID,
		VehicleTypeID:      service.VehicleTypeID,
		WashingMinutes:     service.WashingMinutes,
		DisinfectantUsedMl: service.DisinfectantUsedMl,
		DegreaserUsedMl:    service.DegreaserUsedMl,
		BleachUsedMl:       service.BleachUsedMl,
		WaterUsedL:         service.WaterUsedL,
	}
}

func (r washingServiceRecord) toDomain() *domain.WashingService {
	return &domain.WashingService{
		ID:                 r.ID,
		VehicleTypeID:      r.VehicleTypeID,
		WashingMinutes:     r.WashingMinutes,
		DisinfectantUsedMl: r.DisinfectantUsedMl,
		DegreaserUsedMl:    r.DegreaserUsedMl,
		BleachUsedMl:       r.BleachUsedMl,
		WaterUsedL:         r.WaterUsedL,
	}
}
