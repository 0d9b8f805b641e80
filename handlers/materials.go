package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
)

func GetAllMaterials(w http.ResponseWriter, r *http.Request) {
	var materials []models.MaterialNeed
	if err := config.DB.
		Preload("Project").
		Order("created_at DESC").
		Find(&materials).Error; err != nil {
		log.Printf("Failed to fetch materials: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch materials")
		return
	}
	respondJSON(w, http.StatusOK, materials)
}

func CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var material models.MaterialNeed
	if err := json.NewDecoder(r.Body).Decode(&material); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if material.ProjectID == uuid.Nil || material.MaterialName == "" || material.Quantity == 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if material.Unit == "" {
		material.Unit = "pieces"
	}
	if material.Status == "" {
		material.Status = "needed"
	}

	if err := config.DB.Create(&material).Error; err != nil {
		log.Printf("Failed to create material: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create material")
		return
	}
	if err := config.DB.Preload("Project").First(&material, "id = ?", material.ID).Error; err != nil {
		log.Printf("Failed to reload material %s after create: %v", material.ID, err)
	}
	respondJSON(w, http.StatusCreated, material)
}

func GetMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var material models.MaterialNeed
	if err := config.DB.Preload("Project").First(&material, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Material not found")
			return
		}
		log.Printf("Failed to fetch material %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch material")
		return
	}
	respondJSON(w, http.StatusOK, material)
}

func UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var material models.MaterialNeed
	if err := config.DB.Preload("Project").First(&material, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Material not found")
			return
		}
		log.Printf("Failed to fetch material %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch material")
		return
	}

	keptID, keptProject := material.ID, material.ProjectID
	if err := json.NewDecoder(r.Body).Decode(&material); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	material.ID, material.ProjectID = keptID, keptProject

	if err := config.DB.Save(&material).Error; err != nil {
		log.Printf("Failed to update material %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update material")
		return
	}
	respondJSON(w, http.StatusOK, material)
}

func DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.MaterialNeed{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("Failed to delete material %s: %v", id, result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Material not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
