package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
)

// OnboardingInput is the health questionnaire a student completes on first
// login, as it arrives from the form.
type OnboardingInput struct {
	Phone          string
	Address        string
	EmergencyPhone string
	DateOfBirth    string
	ActivityType   string
	Weight         float64
	Height         float64

	HasChronicDisease     bool
	ChronicDiseaseDetails string
	HasAllergies          bool
	AllergiesDetails      string
	IsUnderTreatment      bool
	TreatmentDetails      string
	TakesMedication       bool
	MedicationDetails     string
	HadSurgery            bool
	SurgeryDetails        string
	HasPhysicalLimitation bool
	LimitationDetails     string

	RelevantConditions  string
	Goals               string
	DeclarationAccepted bool
}

// ValidateOnboardingInput normalizes the questionnaire and returns the
// profile plus the user-record updates to persist. All violations are
// InvalidInput; nothing reaches the database on failure.
func ValidateOnboardingInput(input OnboardingInput, now time.Time) (models.HealthProfile, map[string]any, error) {
	phone := strings.TrimSpace(input.Phone)
	address := strings.TrimSpace(input.Address)
	emergencyPhone := strings.TrimSpace(input.EmergencyPhone)
	goals := strings.TrimSpace(input.Goals)

	if len(phone) < 6 {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if address == "" {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(emergencyPhone) < 6 {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: emergency phone is required", ErrInvalidInput)
	}
	if goals == "" {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: at least one goal is required", ErrInvalidInput)
	}
	if !input.DeclarationAccepted {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: health declaration must be accepted", ErrInvalidInput)
	}
	if input.Weight <= 0 || input.Height <= 0 {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: weight and height are required", ErrInvalidInput)
	}

	activity, err := ParseActivity(input.ActivityType)
	if err != nil {
		return models.HealthProfile{}, nil, err
	}

	dateOfBirth, err := time.Parse("2006-01-02", strings.TrimSpace(input.DateOfBirth))
	if err != nil {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: malformed date of birth", ErrInvalidInput)
	}
	if !dateOfBirth.Before(dateOnly(now)) {
		return models.HealthProfile{}, nil, fmt.Errorf("%w: date of birth must be in the past", ErrInvalidInput)
	}

	profile := models.HealthProfile{
		Weight:                input.Weight,
		Height:                input.Height,
		HasChronicDisease:     input.HasChronicDisease,
		ChronicDiseaseDetails: strings.TrimSpace(input.ChronicDiseaseDetails),
		HasAllergies:          input.HasAllergies,
		AllergiesDetails:      strings.TrimSpace(input.AllergiesDetails),
		IsUnderTreatment:      input.IsUnderTreatment,
		TreatmentDetails:      strings.TrimSpace(input.TreatmentDetails),
		TakesMedication:       input.TakesMedication,
		MedicationDetails:     strings.TrimSpace(input.MedicationDetails),
		HadSurgery:            input.HadSurgery,
		SurgeryDetails:        strings.TrimSpace(input.SurgeryDetails),
		HasPhysicalLimitation: input.HasPhysicalLimitation,
		LimitationDetails:     strings.TrimSpace(input.LimitationDetails),
		RelevantConditions:    strings.TrimSpace(input.RelevantConditions),
		Goals:                 goals,
		DeclarationAcceptedAt: now,
	}

	updates := map[string]any{
		"phone":           phone,
		"address":         address,
		"emergency_phone": emergencyPhone,
		"date_of_birth":   dateOfBirth,
		"activity_type":   activity,
	}

	return profile, updates, nil
}
