// Package rating computes carrier-billing weights from parcel data. All
// functions are pure; inputs are assumed non-negative or nil (the input
// boundary rejects negatives before they get here).
package rating

import (
	"math"

	"github.com/spst-logistics/spst-backend/internal/model"
)

// volumetric divisor used by express carriers for cm/kg.
const divisor = 4000

// VolumetricWeight returns a parcel line's volumetric weight in kg. A line
// with quantity N describes N identical boxes, so the single-box L×W×H/4000
// figure is multiplied by N. It is 0 when any dimension is missing or zero.
func VolumetricWeight(p model.Parcel) float64 {
	if p.LengthCm == nil || p.WidthCm == nil || p.HeightCm == nil {
		return 0
	}
	l, w, h := *p.LengthCm, *p.WidthCm, *p.HeightCm
	if l == 0 || w == 0 || h == 0 {
		return 0
	}
	return float64(qty(p)) * l * w * h / divisor
}

// TotalVolumetric sums volumetric weight across parcels.
func TotalVolumetric(parcels []model.Parcel) float64 {
	var sum float64
	for _, p := range parcels {
		sum += VolumetricWeight(p)
	}
	return sum
}

// TotalActual sums declared weight across parcels.
func TotalActual(parcels []model.Parcel) float64 {
	var sum float64
	for _, p := range parcels {
		if p.WeightKg != nil {
			sum += float64(qty(p)) * *p.WeightKg
		}
	}
	return sum
}

// BillableWeight is the greater of actual and volumetric totals, rounded
// half-up to two decimals.
func BillableWeight(parcels []model.Parcel) float64 {
	return Round2(math.Max(TotalActual(parcels), TotalVolumetric(parcels)))
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func qty(p model.Parcel) int {
	if p.Quantity <= 0 {
		return 1
	}
	return p.Quantity
}
