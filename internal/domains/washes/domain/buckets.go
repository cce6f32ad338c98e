package domain

import "strings"

// Bucket names one of the consumption aggregates stamped onto a wash record.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketDisinfectant
	BucketDegreaser
	BucketBleach
)

// ClassifySupplyName assigns a supply to a bucket by case-insensitive
// substring match, first match wins. Names matching no keyword land in
// BucketNone: their consumption is debited from stock but dropped from the
// stamped totals.
func ClassifySupplyName(name string) Bucket {
	lowered := strings.ToLower(name)
	switch {
	case strings.Contains(lowered, "disinfectant"):
		return BucketDisinfectant
	case strings.Contains(lowered, "degreaser"):
		return BucketDegreaser
	case strings.Contains(lowered, "bleach"):
		return BucketBleach
	default:
		return BucketNone
	}
}

// UsageTotals accumulates per-bucket consumption in milliliters.
type UsageTotals struct {
	DisinfectantMl float64
	DegreaserMl    float64
	BleachMl       float64
}

// Add accumulates milliliters into the given bucket; BucketNone is a no-op.
func (t *UsageTotals) Add(bucket Bucket, milliliters float64) {
	switch bucket {
	case BucketDisinfectant:
		t.DisinfectantMl += milliliters
	case BucketDegreaser:
		t.DegreaserMl += milliliters
	case BucketBleach:
		t.BleachMl += milliliters
	}
}
