package domain

// VehicleType describes a category of vehicles the wash bays handle.
// Read-only from the accounting core's perspective.
type VehicleType struct {
	ID          int64
	Name        string
	Description string
	// Aliases are alternative labels operators use at intake.
	Aliases []string
}

// ConsumptionRule links a vehicle type to one supply with the amount consumed
// per service, in milliliters. The rules for a vehicle type form its recipe.
type ConsumptionRule struct {
	ID            int64
	VehicleTypeID int64
	SupplyID      int64
	SupplyName    string
	QuantityMl    float64
}
