package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

const (
	ActivityGym     = "gym"
	ActivityPilates = "pilates"
	ActivityMixed   = "mixed"
)

type User struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	DNI                 string `gorm:"uniqueIndex;not null" json:"dni"`
	FullName            string `gorm:"not null" json:"full_name"`
	Email               string `json:"email"`
	PasswordHash        string `gorm:"not null" json:"-"`
	Role                string `gorm:"not null;default:student" json:"role"`
	ActivityType        string `gorm:"not null;default:gym" json:"activity_type"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	EmergencyPhone      string `json:"emergency_phone"`
	DateOfBirth         *time.Time `json:"date_of_birth,omitempty"`
	OnboardingCompleted bool       `gorm:"not null;default:false" json:"onboarding_completed"`
	MustChangePassword  bool       `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
}

type HealthProfile struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	UserID                uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Weight                float64 `json:"weight"`
	Height                float64 `json:"height"`
	HasChronicDisease     bool    `gorm:"not null;default:false" json:"has_chronic_disease"`
	ChronicDiseaseDetails string  `json:"chronic_disease_details"`
	HasAllergies          bool    `gorm:"not null;default:false" json:"has_allergies"`
	AllergiesDetails      string  `json:"allergies_details"`
	IsUnderTreatment      bool    `gorm:"not null;default:false" json:"is_under_treatment"`
	TreatmentDetails      string  `json:"treatment_details"`
	TakesMedication       bool    `gorm:"not null;default:false" json:"takes_medication"`
	MedicationDetails     string  `json:"medication_details"`
	HadSurgery            bool    `gorm:"not null;default:false" json:"had_surgery"`
	SurgeryDetails        string  `json:"surgery_details"`
	HasPhysicalLimitation bool    `gorm:"not null;default:false" json:"has_physical_limitation"`
	LimitationDetails     string  `json:"limitation_details"`
	RelevantConditions    string  `json:"relevant_conditions"`
	Goals                 string  `json:"goals"`
	DeclarationAcceptedAt time.Time `gorm:"not null" json:"declaration_accepted_at"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
