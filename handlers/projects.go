package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
)

// GetAllProjects lists every project with its installations and
// material needs, newest first.
func GetAllProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := config.DB.
		Preload("Installations").
		Preload("MaterialsNeeded").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		log.Printf("Failed to fetch projects: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if project.Name == "" || project.Address == "" || time.Time(project.DateStarted).IsZero() {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if project.Status == "" {
		project.Status = "active"
	}

	if err := config.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

func GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var project models.Project
	err := config.DB.
		Preload("Installations").
		Preload("MaterialsNeeded").
		First(&project, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("Failed to fetch project %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var project models.Project
	if err := config.DB.First(&project, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("Failed to fetch project %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	// Decode over the loaded record so omitted fields keep their values.
	keptID := project.ID
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	project.ID = keptID

	if err := config.DB.Save(&project).Error; err != nil {
		log.Printf("Failed to update project %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// DeleteProject removes a project. Installations and material needs
// cascade at the database level; reports keep their snapshot with the
// project reference cleared.
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("Failed to delete project %s: %v", id, result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
