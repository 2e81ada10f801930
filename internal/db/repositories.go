package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Payments  *PaymentRepository
	Bookings  *BookingRepository
	Settings  *SettingsRepository
	Routines  *RoutineRepository
	Exercises *ExerciseRepository
	Expenses  *ExpenseRepository
	Teams     *TeamRepository
	Progress  *ProgressRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Payments:  NewPaymentRepository(database),
		Bookings:  NewBookingRepository(database),
		Settings:  NewSettingsRepository(database),
		Routines:  NewRoutineRepository(database),
		Exercises: NewExerciseRepository(database),
		Expenses:  NewExpenseRepository(database),
		Teams:     NewTeamRepository(database),
		Progress:  NewProgressRepository(database),
	}
}
