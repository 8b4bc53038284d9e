package router

import (
	"net/http"

	"checkboard/app/controllers"
	"checkboard/app/middleware"
)

func NewRouter(
	httpCtrl *controllers.HTTPController,
	authCtrl *controllers.AuthController,
	adminCtrl *controllers.AdminController,
	checklistCtrl *controllers.ChecklistController,
	assignmentCtrl *controllers.AssignmentController,
	progressCtrl *controllers.ProgressController,
	maintCtrl *controllers.MaintenanceController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/login", authCtrl.Login)
	mux.HandleFunc("/register", authCtrl.Register)
	mux.HandleFunc("/checklists", checklistCtrl.List)

	// authenticated
	mux.Handle("/assignments", mw.RequireAuth(http.HandlerFunc(assignmentCtrl.Mine)))
	mux.Handle("/progress", mw.RequireAuth(http.HandlerFunc(progressCtrl.Progress)))
	mux.Handle("/stats", mw.RequireAuth(http.HandlerFunc(progressCtrl.Stats)))

	// admin-only
	mux.Handle("/admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.Users)))
	mux.Handle("/admin/assignments", mw.RequireAdmin(http.HandlerFunc(assignmentCtrl.Admin)))
	mux.Handle("/admin/export", mw.RequireAdmin(http.HandlerFunc(maintCtrl.Export)))
	mux.Handle("/admin/import", mw.RequireAdmin(http.HandlerFunc(maintCtrl.Import)))
	mux.Handle("/admin/reset", mw.RequireAdmin(http.HandlerFunc(maintCtrl.Reset)))

	return mux
}
