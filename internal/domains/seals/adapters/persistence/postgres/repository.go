package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devsystem/carwash-erp/internal/domains/seals/domain"
	"github.com/devsystem/carwash-erp/internal/domains/seals/ports"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists seal logs in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type sealLogRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	SealNumber   string    `gorm:"column:seal_number;index"`
	VehiclePlate string    `gorm:"column:vehicle_plate"`
	Notes        string    `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;index"`
}

func (sealLogRecord) TableName() string { return "seal_logs" }

func (r *Repository) Save(ctx context.Context, log *domain.SealLog) (*domain.SealLog, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, errors.New("seal log is nil")
	}
	record := sealLogRecord{
		ID:           log.ID,
		SealNumber:   log.SealNumber,
		VehiclePlate: log.VehiclePlate,
		Notes:        log.Notes,
		CreatedAt:    log.CreatedAt,
	}
	if err := session.Save(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	session, err := r.session(ctx)
	if err != nil {
		return err
	}
	result := session.Delete(&sealLogRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	session, err := r.session(ctx)
	if err != nil {
		return 0, err
	}
	result := session.Where("1 = 1").Delete(&sealLogRecord{})
	return result.RowsAffected, result.Error
}

func (r *Repository) List(ctx context.Context) ([]*domain.SealLog, error) {
	session, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var records []sealLogRecord
	if err := session.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	logs := make([]*domain.SealLog, 0, len(records))
	for i := range records {
		logs = append(logs, records[i].toDomain())
	}
	return logs, nil
}

func (r *Repository) session(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres seal log repository not configured")
	}
	return platformpostgres.Session(ctx, r.db), nil
}

func (r sealLogRecord) toDomain() *domain.SealLog {
	return &domain.SealLog{
		ID:           r.ID,
		SealNumber:   r.SealNumber,
		VehiclePlate: r.VehiclePlate,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}
