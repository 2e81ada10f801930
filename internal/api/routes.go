package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	api.Get("/me", handler.AuthRequired, handler.Me)
	api.Post("/onboarding", handler.AuthRequired, handler.CompleteOnboarding)

	payments := api.Group("/payments", handler.AuthRequired, handler.OnboardingRequired)
	payments.Get("", handler.ListMyPayments)
	payments.Post("/transfer", handler.SubmitTransferProof)

	routines := api.Group("/routines", handler.AuthRequired, handler.OnboardingRequired)
	routines.Get("", handler.ListMyRoutines)
	routines.Get("/:id", handler.GetMyRoutine)

	pilates := api.Group("/pilates", handler.AuthRequired, handler.OnboardingRequired, handler.PilatesAccessRequired)
	pilates.Get("/settings", handler.GetPilatesSettings)
	pilates.Get("/week", handler.WeekSchedule)
	pilates.Get("/bookings", handler.MyUpcomingBookings)
	pilates.Post("/bookings", handler.BookSlot)
	pilates.Delete("/bookings", handler.CancelSlot)

	progress := api.Group("/progress", handler.AuthRequired, handler.OnboardingRequired)
	progress.Get("/benchmarks", handler.ListMyBenchmarks)
	progress.Post("/benchmarks", handler.CreateBenchmark)
	progress.Get("/sessions", handler.ListMySessions)
	progress.Post("/sessions", handler.StartSession)
	progress.Post("/sessions/finish", handler.FinishSession)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)

	admin.Get("/dashboard", handler.DashboardStats)

	admin.Get("/students", handler.ListStudents)
	admin.Post("/students", handler.CreateStudent)
	admin.Get("/students/:id", handler.GetStudent)
	admin.Patch("/students/:id", handler.UpdateStudent)
	admin.Post("/students/:id/reset-password", handler.ResetStudentPassword)
	admin.Delete("/students/:id", handler.DeleteStudent)

	admin.Get("/payments", handler.ListPayments)
	admin.Post("/payments", handler.RegisterPayment)
	admin.Post("/payments/:id/approve", handler.ApprovePayment)
	admin.Post("/payments/:id/reject", handler.RejectPayment)
	admin.Get("/prices", handler.ListActivityPrices)
	admin.Put("/prices", handler.UpsertActivityPrice)

	admin.Get("/pilates/settings", handler.GetPilatesSettings)
	admin.Put("/pilates/settings", handler.UpdatePilatesSettings)
	admin.Get("/pilates/week", handler.AdminWeekBookings)
	admin.Post("/pilates/bookings", handler.AdminBookSlot)
	admin.Delete("/pilates/bookings", handler.AdminCancelSlot)

	admin.Get("/routines", handler.ListRoutines)
	admin.Post("/routines", handler.CreateRoutine)
	admin.Get("/routines/:id", handler.GetRoutine)
	admin.Post("/routines/:id/assign", handler.AssignRoutine)
	admin.Delete("/routines/:id", handler.DeleteRoutine)
	admin.Get("/exercises", handler.ListExercises)
	admin.Post("/exercises", handler.CreateExercise)
	admin.Delete("/exercises/:id", handler.DeleteExercise)

	admin.Get("/expenses", handler.ListExpenses)
	admin.Post("/expenses", handler.CreateExpense)
	admin.Delete("/expenses/:id", handler.DeleteExpense)

	admin.Get("/teams", handler.ListTeams)
	admin.Post("/teams", handler.CreateTeam)
	admin.Get("/teams/:id", handler.GetTeam)
	admin.Delete("/teams/:id", handler.DeleteTeam)
	admin.Post("/teams/:id/players", handler.AddPlayer)
	admin.Post("/players/:id/assessments", handler.RecordAssessment)
	admin.Get("/players/:id/assessments", handler.ListPlayerAssessments)
}
