package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportAdherence  ReportType = "adherence"
	ReportProgress   ReportType = "progress"
	ReportBiometrics ReportType = "biometrics"
	ReportCustom     ReportType = "custom"
)

// AdherenceReportData is the payload of an adherence report.
type AdherenceReportData struct {
	AverageAdherence  int   `json:"average_adherence"`
	PatientCount      int   `json:"patient_count"`
	LowAdherenceCount int   `json:"low_adherence_count"`
	ImprovementRate   int   `json:"improvement_rate"`
	MonthlyTrend      []int `json:"monthly_trend"`
}

// BiometricsReportData is the payload of a biometric improvements report.
type BiometricsReportData struct {
	WeightLossAverage        float64 `json:"weight_loss_average"`
	BloodPressureImprovement float64 `json:"blood_pressure_improvement"`
	GlucoseLevelImprovement  float64 `json:"glucose_level_improvement"`
	CholesterolImprovement   float64 `json:"cholesterol_improvement"`
}

// ProgressReportData is the payload of a program outcomes report.
type ProgressReportData struct {
	HbA1cReduction         float64 `json:"hba1c_reduction"`
	DiabeticPatients       int     `json:"diabetic_patients"`
	SignificantImprovement int     `json:"significant_improvement"`
	MinorImprovement       int     `json:"minor_improvement"`
	NoChange               int     `json:"no_change"`
}

// AnalyticsReport is a generated report. Exactly one payload field is set,
// matching Type; loose map payloads are not used.
type AnalyticsReport struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	GeneratedAt time.Time  `json:"generated_at"`
	Type        ReportType `json:"type"`

	Adherence  *AdherenceReportData  `json:"adherence,omitempty"`
	Biometrics *BiometricsReportData `json:"biometrics,omitempty"`
	Progress   *ProgressReportData   `json:"progress,omitempty"`
}

// AdherencePoint is one day of the roster-wide adherence trend.
type AdherencePoint struct {
	Date    time.Time `json:"date"`
	Average int       `json:"average"`
}
