package web

import (
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// Deps is everything the route map needs
type Deps struct {
	Repo   store.Manager
	Auther auth.HTTPAuthenticator
	Logger auth.Logger
	Debug  bool
}

// Register wires every controller under the router. The route guard
// middleware is expected to be installed by the caller before this runs.
func Register[T any](app router.Router[T], deps Deps) {
	authController := NewAuthController(deps.Auther,
		WithAuthLogger(deps.Logger),
		WithAuthDebug(deps.Debug),
	)

	clients := NewClientsController(deps.Repo, deps.Logger)
	coaches := NewCoachesController(deps.Repo, deps.Logger)
	admin := NewAdminController(deps.Repo, deps.Logger)
	settings := NewSettingsController(deps.Repo, deps.Logger)
	catalog := NewCatalogController(deps.Repo, deps.Logger)
	requests := NewRequestsController(deps.Repo, deps.Logger)
	dashboard := NewDashboardController(deps.Repo, deps.Logger)

	app.Post(authController.Routes.Login, authController.LoginPost).SetName("sign-in.post")
	app.Get(authController.Routes.Logout, authController.LogOut).SetName("sign-out.get")
	app.Get(authController.Routes.Me, authController.Me).SetName("me.get")

	app.Get("/clients", clients.List).SetName("clients.list")
	app.Post("/clients", clients.Create).SetName("clients.create")
	app.Post("/clients/:id", clients.Update).SetName("clients.update")
	app.Post("/clients/:id/delete", clients.Delete).SetName("clients.delete")
	app.Get("/clients/:id/measurements", clients.ListMeasurements).SetName("measurements.list")
	app.Post("/clients/:id/measurements", clients.AddMeasurement).SetName("measurements.add")

	app.Get("/coaches", coaches.List).SetName("coaches.list")
	app.Post("/coaches", coaches.Create).SetName("coaches.create")
	app.Post("/coaches/:id/profile", coaches.UpdateProfile).SetName("coaches.profile.update")
	app.Post("/coaches/:id/delete", coaches.Delete).SetName("coaches.delete")

	app.Get("/coaches/absences", coaches.ListAbsences).SetName("absences.list")
	app.Post("/coaches/absences", coaches.DeclareAbsence).SetName("absences.declare")
	app.Post("/coaches/absences/:id/review", coaches.ReviewAbsence).SetName("absences.review")
	app.Post("/coaches/absences/:id/delete", coaches.DeleteAbsence).SetName("absences.delete")

	app.Get("/services", catalog.ListServices).SetName("services.list")
	app.Post("/services", catalog.CreateService).SetName("services.create")
	app.Post("/services/:id/delete", catalog.DeleteService).SetName("services.delete")

	app.Get("/sessions", catalog.ListSessions).SetName("sessions.list")
	app.Post("/sessions", catalog.ScheduleSession).SetName("sessions.schedule")
	app.Post("/sessions/:id/status", catalog.SetSessionStatus).SetName("sessions.status")
	app.Post("/sessions/:id/delete", catalog.DeleteSession).SetName("sessions.delete")

	app.Get("/requests", requests.ListPending).SetName("requests.pending")
	app.Get("/requests/mine", requests.ListMine).SetName("requests.mine")
	app.Post("/requests", requests.Create).SetName("requests.create")
	app.Post("/requests/:id/respond", requests.Respond).SetName("requests.respond")

	app.Get("/notifications", requests.ListNotifications).SetName("notifications.list")
	app.Post("/notifications/:id/read", requests.MarkNotificationRead).SetName("notifications.read")
	app.Post("/notifications/read-all", requests.MarkAllNotificationsRead).SetName("notifications.read-all")

	app.Get("/settings", settings.Get).SetName("settings.get")
	app.Post("/settings", settings.Update).SetName("settings.update")

	app.Get("/admin/users", admin.ListUsers).SetName("admin.users.list")
	app.Post("/admin/users", admin.CreateUser).SetName("admin.users.create")

	app.Get("/api/dashboard", dashboard.Summary).SetName("api.dashboard")
}
