package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/services"
)

type onboardingInput struct {
	Phone          string  `json:"phone" form:"phone"`
	Address        string  `json:"address" form:"address"`
	EmergencyPhone string  `json:"emergency_phone" form:"emergency_phone"`
	DateOfBirth    string  `json:"date_of_birth" form:"date_of_birth"`
	ActivityType   string  `json:"activity_type" form:"activity_type"`
	Weight         float64 `json:"weight" form:"weight"`
	Height         float64 `json:"height" form:"height"`

	HasChronicDisease     bool   `json:"has_chronic_disease" form:"has_chronic_disease"`
	ChronicDiseaseDetails string `json:"chronic_disease_details" form:"chronic_disease_details"`
	HasAllergies          bool   `json:"has_allergies" form:"has_allergies"`
	AllergiesDetails      string `json:"allergies_details" form:"allergies_details"`
	IsUnderTreatment      bool   `json:"is_under_treatment" form:"is_under_treatment"`
	TreatmentDetails      string `json:"treatment_details" form:"treatment_details"`
	TakesMedication       bool   `json:"takes_medication" form:"takes_medication"`
	MedicationDetails     string `json:"medication_details" form:"medication_details"`
	HadSurgery            bool   `json:"had_surgery" form:"had_surgery"`
	SurgeryDetails        string `json:"surgery_details" form:"surgery_details"`
	HasPhysicalLimitation bool   `json:"has_physical_limitation" form:"has_physical_limitation"`
	LimitationDetails     string `json:"limitation_details" form:"limitation_details"`

	RelevantConditions  string `json:"relevant_conditions" form:"relevant_conditions"`
	Goals               string `json:"goals" form:"goals"`
	DeclarationAccepted bool   `json:"declaration_accepted" form:"declaration_accepted"`
}

// CompleteOnboarding stores the health questionnaire and unlocks the rest of
// the student surface. Submitting twice is rejected so the signed declaration
// cannot be silently replaced.
func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	if user.OnboardingCompleted {
		return apiError(c, fiber.StatusConflict, "onboarding already completed")
	}

	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, updates, err := services.ValidateOnboardingInput(services.OnboardingInput{
		Phone:          input.Phone,
		Address:        input.Address,
		EmergencyPhone: input.EmergencyPhone,
		DateOfBirth:    input.DateOfBirth,
		ActivityType:   input.ActivityType,
		Weight:         input.Weight,
		Height:         input.Height,

		HasChronicDisease:     input.HasChronicDisease,
		ChronicDiseaseDetails: input.ChronicDiseaseDetails,
		HasAllergies:          input.HasAllergies,
		AllergiesDetails:      input.AllergiesDetails,
		IsUnderTreatment:      input.IsUnderTreatment,
		TreatmentDetails:      input.TreatmentDetails,
		TakesMedication:       input.TakesMedication,
		MedicationDetails:     input.MedicationDetails,
		HadSurgery:            input.HadSurgery,
		SurgeryDetails:        input.SurgeryDetails,
		HasPhysicalLimitation: input.HasPhysicalLimitation,
		LimitationDetails:     input.LimitationDetails,

		RelevantConditions:  input.RelevantConditions,
		Goals:               input.Goals,
		DeclarationAccepted: input.DeclarationAccepted,
	}, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	profile.UserID = user.ID
	if err := handler.repos.Users.CompleteOnboarding(user.ID, &profile, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
