package domain

import "errors"

// ErrMissingVehicleType rejects services that do not reference a vehicle type.
var ErrMissingVehicleType = errors.New("vehicle type is mandatory")

// waterLitersPerMinute is the flat water-usage estimate applied per washing minute.
const waterLitersPerMinute = 10.0

// WashingService records one wash. The four usage totals are stamped exactly
// once by the accounting engine before persistence and never edited afterwards.
type WashingService struct {
	ID             int64
	VehicleTypeID  int64
	WashingMinutes int32

	DisinfectantUsedMl float64
	DegreaserUsedMl    float64
	BleachUsedMl       float64
	WaterUsedL         float64
}

// NewWashingService validates and constructs a wash request awaiting accounting.
func NewWashingService(vehicleTypeID int64, washingMinutes int32) (*WashingService, error) {
	if vehicleTypeID <= 0 {
		return nil, ErrMissingVehicleType
	}
	if washingMinutes < 0 {
		washingMinutes = 0
	}
	return &WashingService{VehicleTypeID: vehicleTypeID, WashingMinutes: washingMinutes}, nil
}

// StampAccounting writes the consumption totals and water estimate onto the record.
func (w *WashingService) StampAccounting(totals UsageTotals, waterL float64) {
	w.DisinfectantUsedMl = totals.DisinfectantMl
	w.DegreaserUsedMl = totals.DegreaserMl
	w.BleachUsedMl = totals.BleachMl
	w.WaterUsedL = waterL
}

// WaterForMinutes estimates water usage in liters from the wash duration.
// Zero or absent minutes yield zero.
func WaterForMinutes(minutes int32) float64 {
	if minutes > 0 {
		return float64(minutes) * waterLitersPerMinute
	}
	return 0
}
