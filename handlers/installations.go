package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
)

func GetAllInstallations(w http.ResponseWriter, r *http.Request) {
	var installations []models.Installation
	if err := config.DB.
		Preload("Project").
		Order("created_at DESC").
		Find(&installations).Error; err != nil {
		log.Printf("Failed to fetch installations: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch installations")
		return
	}
	respondJSON(w, http.StatusOK, installations)
}

func CreateInstallation(w http.ResponseWriter, r *http.Request) {
	var installation models.Installation
	if err := json.NewDecoder(r.Body).Decode(&installation); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if installation.ProjectID == uuid.Nil || installation.Address == "" ||
		time.Time(installation.InstallDate).IsZero() {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if installation.Status == "" {
		installation.Status = "pending"
	}

	if err := config.DB.Create(&installation).Error; err != nil {
		log.Printf("Failed to create installation: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create installation")
		return
	}
	if err := config.DB.Preload("Project").First(&installation, "id = ?", installation.ID).Error; err != nil {
		log.Printf("Failed to reload installation %s after create: %v", installation.ID, err)
	}
	respondJSON(w, http.StatusCreated, installation)
}

func GetInstallation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var installation models.Installation
	if err := config.DB.Preload("Project").First(&installation, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Installation not found")
			return
		}
		log.Printf("Failed to fetch installation %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch installation")
		return
	}
	respondJSON(w, http.StatusOK, installation)
}

func UpdateInstallation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var installation models.Installation
	if err := config.DB.Preload("Project").First(&installation, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Installation not found")
			return
		}
		log.Printf("Failed to fetch installation %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch installation")
		return
	}

	keptID, keptProject := installation.ID, installation.ProjectID
	if err := json.NewDecoder(r.Body).Decode(&installation); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	// id and project binding are fixed for the record's lifetime
	installation.ID, installation.ProjectID = keptID, keptProject

	if err := config.DB.Save(&installation).Error; err != nil {
		log.Printf("Failed to update installation %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update installation")
		return
	}
	respondJSON(w, http.StatusOK, installation)
}

func DeleteInstallation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Installation{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("Failed to delete installation %s: %v", id, result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete installation")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Installation not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
