package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySupplyName(t *testing.T) {
	cases := []struct {
		name string
		want Bucket
	}{
		{"Industrial Bleach", BucketBleach},
		{"bleach", BucketBleach},
		{"Hospital DISINFECTANT", BucketDisinfectant},
		{"Citrus Degreaser", BucketDegreaser},
		{"Foam Wax", BucketNone},
		{"", BucketNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifySupplyName(tc.name), "name %q", tc.name)
	}
}

func TestUsageTotals_AddDropsUnmatched(t *testing.T) {
	var totals UsageTotals
	totals.Add(BucketBleach, 500)
	totals.Add(BucketDisinfectant, 200)
	totals.Add(BucketNone, 999)

	assert.Equal(t, 500.0, totals.BleachMl)
	assert.Equal(t, 200.0, totals.DisinfectantMl)
	assert.Equal(t, 0.0, totals.DegreaserMl)
}

func TestWaterForMinutes(t *testing.T) {
	assert.Equal(t, 120.0, WaterForMinutes(12))
	assert.Equal(t, 0.0, WaterForMinutes(0))
	assert.Equal(t, 0.0, WaterForMinutes(-3))
}
