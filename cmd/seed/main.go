// Command seed loads a demo catalog into PostgreSQL: supplies, vehicle
// types, and the consumption recipe for each type. Restocks merge by name, so
// rerunning tops up stock instead of duplicating rows.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	suppliespostgres "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/persistence/postgres"
	suppliesapp "github.com/devsystem/carwash-erp/internal/domains/supplies/application"
	suppliesports "github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
	"github.com/devsystem/carwash-erp/internal/platform/migrations"
	platformpostgres "github.com/devsystem/carwash-erp/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed")
	}
	if err := migrations.Run(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	supplyIDs, err := seedSupplies(ctx, db)
	if err != nil {
		log.Fatalf("failed to seed supplies: %v", err)
	}
	if err := seedFleet(ctx, db, supplyIDs); err != nil {
		log.Fatalf("failed to seed fleet catalog: %v", err)
	}
	log.Printf("seed completed")
}

func seedSupplies(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	ledger := suppliesapp.NewService(suppliespostgres.NewRepository(db))
	stock := []struct {
		name     string
		quantity float64
	}{
		{"Industrial Disinfectant", 50},
		{"Engine Degreaser", 40},
		{"Chlorine Bleach", 30},
	}
	ids := make(map[string]int64, len(stock))
	for _, item := range stock {
		saved, err := ledger.Restock(ctx, suppliesports.RestockInput{Name: item.name, Quantity: item.quantity})
		if err != nil {
			return nil, err
		}
		ids[item.name] = saved.ID
	}
	return ids, nil
}

// seedFleet inserts the vehicle type catalog and its recipes. The catalog is
// skipped entirely when vehicle types already exist.
func seedFleet(ctx context.Context, db *gorm.DB, supplyIDs map[string]int64) error {
	var count int64
	if err := db.WithContext(ctx).Table("vehicle_types").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("vehicle types already present, skipping fleet seed")
		return nil
	}

	types := []map[string]interface{}{
		{"name": "Sedan", "description": "Standard passenger car", "aliases": pq.StringArray{"car", "hatchback"}},
		{"name": "Truck", "description": "Heavy cargo vehicle", "aliases": pq.StringArray{"lorry", "semi"}},
	}
	typeIDs := make(map[string]int64, len(types))
	for _, vt := range types {
		vt["created_at"] = time.Now().UTC()
		vt["updated_at"] = time.Now().UTC()
		if err := db.WithContext(ctx).Table("vehicle_types").Create(vt).Error; err != nil {
			return err
		}
		var id int64
		name := vt["name"].(string)
		if err := db.WithContext(ctx).Table("vehicle_types").Where("name = ?", name).Select("id").Scan(&id).Error; err != nil {
			return err
		}
		typeIDs[name] = id
	}

	recipes := []struct {
		vehicleType string
		supplyName  string
		quantityMl  float64
	}{
		{"Sedan", "Industrial Disinfectant", 250},
		{"Sedan", "Chlorine Bleach", 100},
		{"Truck", "Industrial Disinfectant", 500},
		{"Truck", "Engine Degreaser", 400},
		{"Truck", "Chlorine Bleach", 200},
	}
	for _, recipe := range recipes {
		row := map[string]interface{}{
			"vehicle_type_id": typeIDs[recipe.vehicleType],
			"supply_id":       supplyIDs[recipe.supplyName],
			"quantity_ml":     recipe.quantityMl,
		}
		if err := db.WithContext(ctx).Table("supply_consumptions").Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
