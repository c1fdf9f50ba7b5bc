package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type BiometricType string

const (
	BiometricWeight        BiometricType = "weight"
	BiometricBloodPressure BiometricType = "blood_pressure"
	BiometricGlucose       BiometricType = "glucose"
	BiometricHeartRate     BiometricType = "heart_rate"
)

// BiometricTypes lists every reading type in display order.
var BiometricTypes = []BiometricType{
	BiometricWeight,
	BiometricBloodPressure,
	BiometricGlucose,
	BiometricHeartRate,
}

func (t BiometricType) Valid() bool {
	for _, known := range BiometricTypes {
		if t == known {
			return true
		}
	}
	return false
}

// BiometricReading is one measurement. Blood pressure carries the
// systolic/diastolic pair; every other type carries Value. Readings
// compare only within the same type.
type BiometricReading struct {
	ID        uuid.UUID     `json:"id"`
	Type      BiometricType `json:"type"`
	Value     float64       `json:"value,omitempty"`
	Systolic  int           `json:"systolic,omitempty"`
	Diastolic int           `json:"diastolic,omitempty"`
	Unit      string        `json:"unit"`
	Timestamp time.Time     `json:"timestamp"`
	IsNormal  bool          `json:"is_normal"`
}

// DisplayValue renders the reading for list views.
func (r *BiometricReading) DisplayValue() string {
	if r.Type == BiometricBloodPressure {
		return fmt.Sprintf("%d/%d", r.Systolic, r.Diastolic)
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}
