package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lifechef-health/careportal-api/internal/email"
	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
)

type AlertService interface {
	List(ctx context.Context) ([]*model.Alert, error)
	ForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Alert, error)
	UnreadCount(ctx context.Context) (int, error)
	Create(ctx context.Context, req *model.CreateAlertRequest) (*model.Alert, error)
}

type Service struct {
	repo     repository.AlertRepository
	patients repository.PatientRepository
	users    repository.UserRepository
	notifier email.EmailService
}

func NewService(repo repository.AlertRepository, patients repository.PatientRepository, users repository.UserRepository, notifier email.EmailService) *Service {
	return &Service{repo: repo, patients: patients, users: users, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]*model.Alert, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *Service) ForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Alert, error) {
	alerts, err := s.repo.ListForPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to list patient alerts: %w", err)
	}
	return alerts, nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}

// Create raises an alert on a patient. High severity alerts notify the
// patient's care team by email; notification failures are logged, not
// surfaced, since the alert itself is already recorded.
func (s *Service) Create(ctx context.Context, req *model.CreateAlertRequest) (*model.Alert, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid patient id", err)
	}

	alert := &model.Alert{
		ID:        uuid.New(),
		Type:      model.AlertType(req.Type),
		Severity:  model.AlertSeverity(req.Severity),
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
		IsRead:    false,
	}

	if err := s.repo.Create(ctx, patientID, alert); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	if alert.Severity == model.SeverityHigh {
		s.notifyCareTeam(ctx, patientID, alert)
	}

	return alert, nil
}

func (s *Service) notifyCareTeam(ctx context.Context, patientID uuid.UUID, alert *model.Alert) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		log.Warn().Err(err).Str("patient_id", patientID.String()).Msg("skipping alert notification")
		return
	}

	var recipients []string
	for _, userID := range patient.CareTeam {
		user, err := s.users.Get(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("skipping unknown care team member")
			continue
		}
		recipients = append(recipients, user.Email)
	}

	if err := s.notifier.SendAlertNotification(recipients, patient.Name, alert); err != nil {
		log.Error().Err(err).Str("alert_id", alert.ID.String()).Msg("failed to notify care team")
	}
}
