package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
)

const defaultAdherenceRate = 100

type PatientService interface {
	List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	Conditions(ctx context.Context) ([]string, error)
	Biometrics(ctx context.Context, patientID uuid.UUID, typ model.BiometricType) ([]*model.BiometricReading, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// Create enrolls a patient. New patients start with full adherence
// unless the request says otherwise, and with empty alert and biometric
// histories.
func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	adherence := defaultAdherenceRate
	if req.AdherenceRate != nil {
		adherence = *req.AdherenceRate
	}
	conditions := req.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	patient := &model.Patient{
		ID:            uuid.New(),
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		Email:         req.Email,
		Phone:         req.Phone,
		Conditions:    conditions,
		Avatar:        req.Avatar,
		AdherenceRate: adherence,
		LastActivity:  time.Now().UTC(),
		Alerts:        []*model.Alert{},
		Biometrics:    []*model.BiometricReading{},
		CareTeam:      []uuid.UUID{},
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Conditions(ctx context.Context) ([]string, error) {
	conditions, err := s.repo.DistinctConditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conditions: %w", err)
	}
	return conditions, nil
}

func (s *Service) Biometrics(ctx context.Context, patientID uuid.UUID, typ model.BiometricType) ([]*model.BiometricReading, error) {
	if !typ.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown biometric type %q", typ), nil)
	}
	readings, err := s.repo.BiometricHistory(ctx, patientID, typ)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get biometric history: %w", err)
	}
	return readings, nil
}
