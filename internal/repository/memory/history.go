package memory

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
)

// biometricUnits maps reading types to their display units.
var biometricUnits = map[model.BiometricType]string{
	model.BiometricGlucose:       "mg/dL",
	model.BiometricWeight:        "lbs",
	model.BiometricBloodPressure: "mmHg",
	model.BiometricHeartRate:     "bpm",
}

// generateBiometricHistory produces days+1 daily readings ending today.
// Values vary around a type baseline; weight trends slightly downward.
func generateBiometricHistory(rng *rand.Rand, gender string, typ model.BiometricType, days int) []*model.BiometricReading {
	readings := make([]*model.BiometricReading, 0, days+1)
	now := time.Now().UTC()

	weightBase := 190.0
	if gender == "Female" {
		weightBase = 150.0
	}

	for i := days; i >= 0; i-- {
		ts := now.AddDate(0, 0, -i)
		r := &model.BiometricReading{
			ID:        uuid.New(),
			Type:      typ,
			Unit:      biometricUnits[typ],
			Timestamp: ts,
			IsNormal:  true,
		}

		switch typ {
		case model.BiometricGlucose:
			r.Value = math.Round(120 + rng.Float64()*40 - 20)
			r.IsNormal = r.Value <= 140
		case model.BiometricWeight:
			r.Value = math.Round(weightBase - float64(i)*0.2 + rng.Float64()*2 - 1)
		case model.BiometricBloodPressure:
			r.Systolic = int(math.Round(120 + rng.Float64()*30 - 15))
			r.Diastolic = int(math.Round(80 + rng.Float64()*20 - 10))
			r.IsNormal = r.Systolic <= 140 && r.Diastolic <= 90
		case model.BiometricHeartRate:
			r.Value = math.Round(72 + rng.Float64()*10 - 5)
			r.IsNormal = r.Value <= 100
		}

		readings = append(readings, r)
	}
	return readings
}

// generateAdherenceHistory produces days+1 daily roster averages ending
// today, following a slowly improving trend capped at 95.
func generateAdherenceHistory(rng *rand.Rand, days int) []*model.AdherencePoint {
	points := make([]*model.AdherencePoint, 0, days+1)
	now := time.Now().UTC()
	trend := 75.0

	for i := days; i >= 0; i-- {
		trend = math.Min(95, trend+rng.Float64()*0.4-0.1)
		points = append(points, &model.AdherencePoint{
			Date:    now.AddDate(0, 0, -i).Truncate(24 * time.Hour),
			Average: int(math.Round(trend)),
		})
	}
	return points
}
