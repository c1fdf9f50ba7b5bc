package memory

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/pkg/security"
)

// demoPassword is the shared password of every seeded account.
const demoPassword = "password"

const (
	historyDays       = 14
	adherenceDays     = 90
	historyRandomSeed = 42
)

// seed loads the demo dataset. Timestamps are anchored to the current
// time so trend windows and inbox ordering stay meaningful.
func (s *Store) seed() {
	now := time.Now().UTC().Truncate(time.Minute)
	hasher := security.NewBcryptHasher(0)
	passwordHash, err := hasher.Hash(demoPassword)
	if err != nil {
		panic("seed: " + err.Error())
	}

	sarah := &model.User{
		ID:           uuid.New(),
		Name:         "Dr. Sarah Johnson",
		Email:        "sarah.johnson@lifechef.health",
		Role:         model.RoleClinician,
		Avatar:       "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=300",
		PasswordHash: passwordHash,
	}
	mark := &model.User{
		ID:           uuid.New(),
		Name:         "Mark Wilson",
		Email:        "mark.wilson@lifechef.health",
		Role:         model.RoleCareTeam,
		Avatar:       "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=300",
		PasswordHash: passwordHash,
	}
	emily := &model.User{
		ID:           uuid.New(),
		Name:         "Dr. Emily Chen",
		Email:        "emily.chen@lifechef.health",
		Role:         model.RoleClinician,
		Avatar:       "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=300",
		PasswordHash: passwordHash,
	}
	s.users = []*model.User{sarah, mark, emily}

	john := &model.Patient{
		ID:            uuid.New(),
		Name:          "John Doe",
		Age:           58,
		Gender:        "Male",
		Email:         "john.doe@example.com",
		Phone:         "(555) 123-4567",
		Conditions:    []string{"Type 2 Diabetes", "Hypertension"},
		Avatar:        "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=300",
		AdherenceRate: 78,
		LastActivity:  now.Add(-19 * time.Hour),
		Alerts: []*model.Alert{
			{
				ID:        uuid.New(),
				Type:      model.AlertAbnormalReading,
				Severity:  model.SeverityMedium,
				Message:   "Elevated blood glucose reading",
				Timestamp: now.Add(-25 * time.Hour),
				IsRead:    false,
			},
			{
				ID:        uuid.New(),
				Type:      model.AlertMissedMeal,
				Severity:  model.SeverityLow,
				Message:   "Missed lunch meal",
				Timestamp: now.Add(-44 * time.Hour),
				IsRead:    true,
			},
		},
		Biometrics: []*model.BiometricReading{
			{
				ID:        uuid.New(),
				Type:      model.BiometricGlucose,
				Value:     182,
				Unit:      "mg/dL",
				Timestamp: now.Add(-25 * time.Hour),
				IsNormal:  false,
			},
			{
				ID:        uuid.New(),
				Type:      model.BiometricBloodPressure,
				Systolic:  138,
				Diastolic: 88,
				Unit:      "mmHg",
				Timestamp: now.Add(-25 * time.Hour),
				IsNormal:  false,
			},
			{
				ID:        uuid.New(),
				Type:      model.BiometricWeight,
				Value:     192,
				Unit:      "lbs",
				Timestamp: now.Add(-25 * time.Hour),
				IsNormal:  true,
			},
		},
		CareTeam: []uuid.UUID{sarah.ID, mark.ID},
	}

	jane := &model.Patient{
		ID:            uuid.New(),
		Name:          "Jane Smith",
		Age:           62,
		Gender:        "Female",
		Email:         "jane.smith@example.com",
		Phone:         "(555) 987-6543",
		Conditions:    []string{"Coronary Artery Disease", "COPD"},
		Avatar:        "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=300",
		AdherenceRate: 92,
		LastActivity:  now.Add(-30 * time.Minute),
		Alerts: []*model.Alert{
			{
				ID:        uuid.New(),
				Type:      model.AlertAbnormalReading,
				Severity:  model.SeverityHigh,
				Message:   "Abnormal heart rate detected",
				Timestamp: now.Add(-11 * time.Hour),
				IsRead:    false,
			},
		},
		Biometrics: []*model.BiometricReading{
			{
				ID:        uuid.New(),
				Type:      model.BiometricHeartRate,
				Value:     72,
				Unit:      "bpm",
				Timestamp: now.Add(-45 * time.Minute),
				IsNormal:  true,
			},
			{
				ID:        uuid.New(),
				Type:      model.BiometricWeight,
				Value:     145,
				Unit:      "lbs",
				Timestamp: now.Add(-40 * time.Minute),
				IsNormal:  true,
			},
		},
		CareTeam: []uuid.UUID{emily.ID},
	}

	robert := &model.Patient{
		ID:            uuid.New(),
		Name:          "Robert Johnson",
		Age:           45,
		Gender:        "Male",
		Email:         "robert.johnson@example.com",
		Phone:         "(555) 456-7890",
		Conditions:    []string{"Obesity", "Pre-diabetes"},
		Avatar:        "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=300",
		AdherenceRate: 65,
		LastActivity:  now.Add(-39 * time.Hour),
		Alerts: []*model.Alert{
			{
				ID:        uuid.New(),
				Type:      model.AlertLowAdherence,
				Severity:  model.SeverityHigh,
				Message:   "Adherence rate below 70%",
				Timestamp: now.Add(-38 * time.Hour),
				IsRead:    false,
			},
		},
		Biometrics: []*model.BiometricReading{
			{
				ID:        uuid.New(),
				Type:      model.BiometricWeight,
				Value:     238,
				Unit:      "lbs",
				Timestamp: now.Add(-39 * time.Hour),
				IsNormal:  false,
			},
		},
		CareTeam: []uuid.UUID{sarah.ID, emily.ID},
	}

	maria := &model.Patient{
		ID:            uuid.New(),
		Name:          "Maria Garcia",
		Age:           52,
		Gender:        "Female",
		Email:         "maria.garcia@example.com",
		Phone:         "(555) 789-0123",
		Conditions:    []string{"Type 1 Diabetes", "Celiac Disease"},
		Avatar:        "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=300",
		AdherenceRate: 88,
		LastActivity:  now.Add(-2 * time.Hour),
		Alerts: []*model.Alert{
			{
				ID:        uuid.New(),
				Type:      model.AlertMessage,
				Severity:  model.SeverityLow,
				Message:   "New message from Maria Garcia",
				Timestamp: now.Add(-90 * time.Minute),
				IsRead:    false,
			},
		},
		Biometrics: []*model.BiometricReading{
			{
				ID:        uuid.New(),
				Type:      model.BiometricGlucose,
				Value:     112,
				Unit:      "mg/dL",
				Timestamp: now.Add(-150 * time.Minute),
				IsNormal:  true,
			},
		},
		CareTeam: []uuid.UUID{mark.ID},
	}

	s.patients = []*model.Patient{john, jane, robert, maria}

	for _, p := range s.patients {
		for _, a := range p.Alerts {
			a.PatientID = p.ID
		}
	}

	mediterranean := &model.MealPlan{
		ID:          uuid.New(),
		Name:        "Low-Carb Mediterranean Plan",
		Description: "Mediterranean-inspired meals with controlled carbohydrates",
		Schedule:    model.ScheduleWeekly,
		Meals: []*model.Meal{
			{
				ID:          uuid.New(),
				Name:        "Greek Chicken Bowl",
				Description: "Grilled chicken with quinoa, olives, feta, and vegetables",
				Nutrition:   model.NutritionFacts{Calories: 420, Protein: 38, Carbs: 28, Fat: 16},
				Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=300",
			},
			{
				ID:          uuid.New(),
				Name:        "Salmon with Roasted Vegetables",
				Description: "Baked salmon with a variety of season vegetables",
				Nutrition:   model.NutritionFacts{Calories: 380, Protein: 32, Carbs: 18, Fat: 20},
				Image:       "https://images.pexels.com/photos/725997/pexels-photo-725997.jpeg?auto=compress&cs=tinysrgb&w=300",
			},
		},
	}

	dash := &model.MealPlan{
		ID:          uuid.New(),
		Name:        "Heart-Healthy DASH Diet",
		Description: "Low-sodium meals following DASH diet principles",
		Schedule:    model.ScheduleDaily,
		Meals: []*model.Meal{
			{
				ID:          uuid.New(),
				Name:        "Vegetable Grain Bowl",
				Description: "Brown rice with roasted vegetables and lean protein",
				Nutrition:   model.NutritionFacts{Calories: 350, Protein: 25, Carbs: 45, Fat: 10},
				Image:       "https://images.pexels.com/photos/1095550/pexels-photo-1095550.jpeg?auto=compress&cs=tinysrgb&w=300",
			},
		},
	}

	calorieControlled := &model.MealPlan{
		ID:          uuid.New(),
		Name:        "Calorie-Controlled Plan",
		Description: "Balanced meals with portion control",
		Schedule:    model.ScheduleWeekly,
		Meals: []*model.Meal{
			{
				ID:          uuid.New(),
				Name:        "Lean Protein Plate",
				Description: "Grilled chicken breast with steamed vegetables and quinoa",
				Nutrition:   model.NutritionFacts{Calories: 410, Protein: 40, Carbs: 30, Fat: 12},
				Image:       "https://images.pexels.com/photos/1833336/pexels-photo-1833336.jpeg?auto=compress&cs=tinysrgb&w=300",
			},
		},
	}

	s.carePlans = []*model.CarePlan{
		{
			ID:          uuid.New(),
			PatientID:   john.ID,
			Title:       "Diabetes Management Plan",
			Description: "Comprehensive plan to manage Type 2 Diabetes and reduce HbA1c levels",
			CreatedAt:   now.AddDate(0, 0, -37),
			UpdatedAt:   now.AddDate(0, 0, -4),
			StartDate:   now.AddDate(0, 0, -37),
			EndDate:     now.AddDate(0, 3, 0),
			Status:      model.CarePlanStatusActive,
			Goals: []*model.Goal{
				{ID: uuid.New(), Description: "Reduce HbA1c to below 7.0%", TargetDate: now.AddDate(0, 3, 0), Status: model.GoalStatusInProgress},
				{ID: uuid.New(), Description: "Lose 15 pounds", TargetDate: now.AddDate(0, 2, 0), Status: model.GoalStatusInProgress},
				{ID: uuid.New(), Description: "Walk 7,000 steps daily", TargetDate: now.AddDate(0, 1, 0), Status: model.GoalStatusAchieved},
			},
			MealPlans: []*model.MealPlan{mediterranean},
			CreatedBy: sarah.ID,
		},
		{
			ID:          uuid.New(),
			PatientID:   jane.ID,
			Title:       "Heart Health Improvement",
			Description: "Dietary and lifestyle plan to improve cardiovascular health",
			CreatedAt:   now.AddDate(0, 0, -57),
			UpdatedAt:   now.AddDate(0, 0, -6),
			StartDate:   now.AddDate(0, 0, -57),
			EndDate:     now.AddDate(0, 4, 0),
			Status:      model.CarePlanStatusActive,
			Goals: []*model.Goal{
				{ID: uuid.New(), Description: "Reduce blood pressure to normal range", TargetDate: now.AddDate(0, 2, 0), Status: model.GoalStatusInProgress},
				{ID: uuid.New(), Description: "Complete cardiac rehabilitation program", TargetDate: now.AddDate(0, 3, 0), Status: model.GoalStatusInProgress},
			},
			MealPlans: []*model.MealPlan{dash},
			CreatedBy: emily.ID,
		},
		{
			ID:          uuid.New(),
			PatientID:   robert.ID,
			Title:       "Weight Management Program",
			Description: "Calorie-controlled meal plan with physical activity recommendations",
			CreatedAt:   now.AddDate(0, 0, -15),
			UpdatedAt:   now.AddDate(0, 0, -1),
			StartDate:   now.AddDate(0, 0, -15),
			EndDate:     now.AddDate(0, 6, 0),
			Status:      model.CarePlanStatusActive,
			Goals: []*model.Goal{
				{ID: uuid.New(), Description: "Lose 30 pounds", TargetDate: now.AddDate(0, 6, 0), Status: model.GoalStatusPending},
				{ID: uuid.New(), Description: "Exercise 150 minutes weekly", TargetDate: now.AddDate(0, 1, 0), Status: model.GoalStatusInProgress},
			},
			MealPlans: []*model.MealPlan{calorieControlled},
			CreatedBy: sarah.ID,
		},
	}

	s.seedConversations(now, sarah, emily, john, jane, robert)

	s.reports = []*model.AnalyticsReport{
		{
			ID:          uuid.New(),
			Title:       "Monthly Adherence Report",
			Description: "Overview of patient adherence to meal plans and recommendations",
			GeneratedAt: now.AddDate(0, 0, -16),
			Type:        model.ReportAdherence,
			Adherence: &model.AdherenceReportData{
				AverageAdherence:  82,
				PatientCount:      24,
				LowAdherenceCount: 5,
				ImprovementRate:   8,
				MonthlyTrend:      []int{78, 80, 81, 82, 83, 82},
			},
		},
		{
			ID:          uuid.New(),
			Title:       "Health Improvements Tracking Quarterly",
			Description: "Analysis of patient biometric changes over the last quarter",
			GeneratedAt: now.AddDate(0, 0, -2),
			Type:        model.ReportBiometrics,
			Biometrics: &model.BiometricsReportData{
				WeightLossAverage:        4.2,
				BloodPressureImprovement: 7.5,
				GlucoseLevelImprovement:  12.3,
				CholesterolImprovement:   8.7,
			},
		},
		{
			ID:          uuid.New(),
			Title:       "Predictive Analysis Outcomes",
			Description: "Effectiveness of diabetes management plans across all patients",
			GeneratedAt: now.AddDate(0, 0, -18),
			Type:        model.ReportProgress,
			Progress: &model.ProgressReportData{
				HbA1cReduction:         0.8,
				DiabeticPatients:       18,
				SignificantImprovement: 12,
				MinorImprovement:       4,
				NoChange:               2,
			},
		},
	}

	rng := rand.New(rand.NewSource(historyRandomSeed))
	for _, p := range s.patients {
		byType := make(map[model.BiometricType][]*model.BiometricReading, len(model.BiometricTypes))
		for _, typ := range model.BiometricTypes {
			byType[typ] = generateBiometricHistory(rng, p.Gender, typ, historyDays)
		}
		s.history[p.ID] = byType
	}
	s.adherence = generateAdherenceHistory(rng, adherenceDays)
}

func (s *Store) seedConversations(now time.Time, sarah, emily *model.User, john, jane, robert *model.Patient) {
	johnThread := []*model.Message{
		{
			ID:          uuid.New(),
			SenderID:    sarah.ID,
			RecipientID: john.ID,
			Content:     "How are you feeling after starting the new meal plan?",
			Timestamp:   now.Add(-23 * time.Hour),
			IsRead:      true,
		},
		{
			ID:          uuid.New(),
			SenderID:    john.ID,
			RecipientID: sarah.ID,
			Content:     "I'm doing well, but I have a question about the dinner portions.",
			Timestamp:   now.Add(-23*time.Hour + 15*time.Minute),
			IsRead:      true,
		},
		{
			ID:          uuid.New(),
			SenderID:    sarah.ID,
			RecipientID: john.ID,
			Content:     "What questions do you have? I'm happy to clarify.",
			Timestamp:   now.Add(-23*time.Hour + 17*time.Minute),
			IsRead:      false,
		},
	}
	janeThread := []*model.Message{
		{
			ID:          uuid.New(),
			SenderID:    emily.ID,
			RecipientID: jane.ID,
			Content:     "Your latest readings look good. Keep up the great work!",
			Timestamp:   now.Add(-1 * time.Hour),
			IsRead:      true,
		},
	}
	robertThread := []*model.Message{
		{
			ID:          uuid.New(),
			SenderID:    sarah.ID,
			RecipientID: robert.ID,
			Content:     "We need to discuss your adherence to the meal plan. Can we schedule a call?",
			Timestamp:   now.Add(-37 * time.Hour),
			IsRead:      false,
		},
	}

	threads := []struct {
		participants []uuid.UUID
		messages     []*model.Message
	}{
		{[]uuid.UUID{sarah.ID, john.ID}, johnThread},
		{[]uuid.UUID{emily.ID, jane.ID}, janeThread},
		{[]uuid.UUID{sarah.ID, robert.ID}, robertThread},
	}

	for _, t := range threads {
		conv := &model.Conversation{
			ID:           uuid.New(),
			Participants: t.participants,
			LastMessage:  t.messages[len(t.messages)-1],
		}
		s.conversations = append(s.conversations, conv)
		s.messages[conv.ID] = t.messages
	}
}
