package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hogl3g/tracker/handlers"
	"github.com/hogl3g/tracker/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.Profile).Methods("GET")

	// Projects
	api.HandleFunc("/projects", handlers.GetAllProjects).Methods("GET")
	api.HandleFunc("/projects", handlers.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id}", handlers.GetProject).Methods("GET")
	api.HandleFunc("/projects/{id}", handlers.UpdateProject).Methods("PUT")
	api.HandleFunc("/projects/{id}", handlers.DeleteProject).Methods("DELETE")

	// Installations
	api.HandleFunc("/installations", handlers.GetAllInstallations).Methods("GET")
	api.HandleFunc("/installations", handlers.CreateInstallation).Methods("POST")
	api.HandleFunc("/installations/{id}", handlers.GetInstallation).Methods("GET")
	api.HandleFunc("/installations/{id}", handlers.UpdateInstallation).Methods("PUT")
	api.HandleFunc("/installations/{id}", handlers.DeleteInstallation).Methods("DELETE")

	// Material needs
	api.HandleFunc("/materials", handlers.GetAllMaterials).Methods("GET")
	api.HandleFunc("/materials", handlers.CreateMaterial).Methods("POST")
	api.HandleFunc("/materials/{id}", handlers.GetMaterial).Methods("GET")
	api.HandleFunc("/materials/{id}", handlers.UpdateMaterial).Methods("PUT")
	api.HandleFunc("/materials/{id}", handlers.DeleteMaterial).Methods("DELETE")

	// Reports
	api.HandleFunc("/reports", handlers.GetAllReports).Methods("GET")
	api.HandleFunc("/reports", handlers.GenerateReport).Methods("POST")

	// Import / export
	api.HandleFunc("/upload", handlers.UploadProjects).Methods("POST")
	api.HandleFunc("/export/projects", handlers.ExportProjects).Methods("GET")
	api.HandleFunc("/export/projects/{id}/report", handlers.ExportProjectReport).Methods("GET")

	return r
}
