// Package analytics computes the roster-wide derived views shown on the
// dashboard: adherence aggregates, condition distribution, and trends.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

// Adherence bucket thresholds.
const (
	highAdherenceMin   = 85
	mediumAdherenceMin = 70
)

// Timeframe windows in days.
const (
	TimeframeWeek    = "7d"
	TimeframeMonth   = "30d"
	TimeframeQuarter = "90d"
)

// AdherenceBuckets partitions the roster by adherence band.
type AdherenceBuckets struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ConditionCount is one bar of the condition distribution.
type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// Overview is the dashboard summary.
type Overview struct {
	PatientCount       int              `json:"patient_count"`
	AverageAdherence   int              `json:"average_adherence"`
	Buckets            AdherenceBuckets `json:"buckets"`
	UnreadAlerts       int              `json:"unread_alerts"`
	PatientsWithAlerts int              `json:"patients_with_alerts"`
}

// AdherenceTrend is the windowed roster trend plus its net change.
type AdherenceTrend struct {
	Timeframe string                  `json:"timeframe"`
	Points    []*model.AdherencePoint `json:"points"`
	Change    int                     `json:"change"`
}

// AverageAdherence returns the rounded mean adherence rate. The second
// result is false for an empty roster.
func AverageAdherence(patients []*model.Patient) (int, bool) {
	if len(patients) == 0 {
		return 0, false
	}
	sum := 0
	for _, p := range patients {
		sum += p.AdherenceRate
	}
	return int(math.Round(float64(sum) / float64(len(patients)))), true
}

// Buckets assigns every patient to exactly one adherence band. The
// boundaries land 70 in medium and 85 in high.
func Buckets(patients []*model.Patient) AdherenceBuckets {
	var b AdherenceBuckets
	for _, p := range patients {
		switch {
		case p.AdherenceRate >= highAdherenceMin:
			b.High++
		case p.AdherenceRate >= mediumAdherenceMin:
			b.Medium++
		default:
			b.Low++
		}
	}
	return b
}

// ConditionHistogram counts patients per condition, ordered by count
// descending. Ties keep first-appearance order.
func ConditionHistogram(patients []*model.Patient) []ConditionCount {
	index := make(map[string]int)
	var counts []ConditionCount
	for _, p := range patients {
		for _, c := range p.Conditions {
			if i, ok := index[c]; ok {
				counts[i].Count++
				continue
			}
			index[c] = len(counts)
			counts = append(counts, ConditionCount{Condition: c, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

type Service struct {
	patients repository.PatientRepository
	alerts   repository.AlertRepository
	reports  repository.AnalyticsRepository
}

func NewService(patients repository.PatientRepository, alerts repository.AlertRepository, reports repository.AnalyticsRepository) *Service {
	return &Service{patients: patients, alerts: alerts, reports: reports}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	patients, err := s.patients.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	unread, err := s.alerts.UnreadCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	withAlerts := 0
	for _, p := range patients {
		if len(p.Alerts) > 0 {
			withAlerts++
		}
	}

	average, _ := AverageAdherence(patients)
	return &Overview{
		PatientCount:       len(patients),
		AverageAdherence:   average,
		Buckets:            Buckets(patients),
		UnreadAlerts:       unread,
		PatientsWithAlerts: withAlerts,
	}, nil
}

// Trend returns the adherence history for a timeframe. Change compares
// the newest point against the one before it; fewer than two points
// yield zero change.
func (s *Service) Trend(ctx context.Context, timeframe string) (*AdherenceTrend, error) {
	days := 30
	switch timeframe {
	case TimeframeWeek:
		days = 7
	case TimeframeQuarter:
		days = 90
	case TimeframeMonth, "":
		timeframe = TimeframeMonth
	default:
		timeframe = TimeframeMonth
	}

	points, err := s.reports.AdherenceHistory(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get adherence history: %w", err)
	}

	change := 0
	if len(points) >= 2 {
		change = points[len(points)-1].Average - points[len(points)-2].Average
	}

	return &AdherenceTrend{
		Timeframe: timeframe,
		Points:    points,
		Change:    change,
	}, nil
}

func (s *Service) Conditions(ctx context.Context) ([]ConditionCount, error) {
	patients, err := s.patients.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return ConditionHistogram(patients), nil
}

func (s *Service) Reports(ctx context.Context) ([]*model.AnalyticsReport, error) {
	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
