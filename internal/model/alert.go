package model

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertMissedMeal      AlertType = "missed_meal"
	AlertAbnormalReading AlertType = "abnormal_reading"
	AlertLowAdherence    AlertType = "low_adherence"
	AlertMessage         AlertType = "message"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Alert is owned by exactly one patient. PatientID is set by the
// repository from the owning patient, never by the caller.
type Alert struct {
	ID        uuid.UUID     `json:"id"`
	PatientID uuid.UUID     `json:"patient_id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	IsRead    bool          `json:"is_read"`
}

// CreateAlertRequest represents alert creation parameters.
type CreateAlertRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
	Type      string `json:"type" binding:"required,oneof=missed_meal abnormal_reading low_adherence message"`
	Severity  string `json:"severity" binding:"required,oneof=low medium high"`
	Message   string `json:"message" binding:"required"`
}
