package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for all bounded contexts in one place so adapters
// stay free of automigrate calls.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&supplyRecord{},
		&vehicleTypeRecord{},
		&supplyConsumptionRecord{},
		&washingServiceRecord{},
		&sealLogRecord{},
	)
}

// Supply schema mirrors the supplies Postgres adapter.
type supplyRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Name            string    `gorm:"column:name;index"`
	SKU             string    `gorm:"column:sku;type:varchar(32);uniqueIndex"`
	CurrentQuantity float64   `gorm:"column:current_quantity"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (supplyRecord) TableName() string { return "supplies" }

// Vehicle type schema mirrors the fleet Postgres adapter.
type vehicleTypeRecord struct {
	ID          int64          `gorm:"primaryKey;column:id"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	Aliases     pq.StringArray `gorm:"column:aliases;type:text[]"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (vehicleTypeRecord) TableName() string { return "vehicle_types" }

// Recipe line linking a vehicle type to a supply and a per-wash dose.
type supplyConsumptionRecord struct {
	ID            int64   `gorm:"primaryKey;column:id"`
	VehicleTypeID int64   `gorm:"column:vehicle_type_id;index"`
	SupplyID      int64   `gorm:"column:supply_id;index"`
	QuantityMl    float64 `gorm:"column:quantity_ml"`
}

func (supplyConsumptionRecord) TableName() string { return "supply_consumptions" }

// Washing service schema mirrors the washes Postgres adapter.
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

// Seal log schema mirrors the seals Postgres adapter.
type sealLogRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	SealNumber   string    `gorm:"column:seal_number;index"`
	VehiclePlate string    `gorm:"column:vehicle_plate"`
	Notes        string    `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;index"`
}

func (sealLogRecord) TableName() string { return "seal_logs" }
