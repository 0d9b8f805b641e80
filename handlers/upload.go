package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
)

const uploadDir = "./uploads" // archive of imported payloads

// UploadProjects imports a CSV or JSON file of projects. Rows are
// processed independently; a malformed row is logged and skipped
// without aborting its siblings, and nothing spans the batch in a
// transaction.
func UploadProjects(w http.ResponseWriter, r *http.Request) {
	// Parse the multipart form (max 50MB)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	isCSV := contentType == "text/csv" || strings.HasSuffix(header.Filename, ".csv")
	isJSON := contentType == "application/json" || strings.HasSuffix(header.Filename, ".json")
	if !isCSV && !isJSON {
		respondError(w, http.StatusBadRequest, "Unsupported file format")
		return
	}

	archiveUpload(header.Filename, data)

	if isCSV {
		importCSV(w, string(data))
	} else {
		importJSON(w, data)
	}
}

func importCSV(w http.ResponseWriter, text string) {
	imported := []models.Project{}
	for i, row := range parseCSVRows(text) {
		project, err := projectFromCSVRow(row)
		if err != nil {
			log.Printf("Skipping import row %d: %v", i+1, err)
			continue
		}
		if err := config.DB.Create(&project).Error; err != nil {
			log.Printf("Skipping import row %d: %v", i+1, err)
			continue
		}
		imported = append(imported, project)
	}
	respondImported(w, imported)
}

func importJSON(w http.ResponseWriter, data []byte) {
	items, err := splitJSONObjects(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to parse file")
		return
	}

	imported := []models.Project{}
	for i, raw := range items {
		project, err := projectFromJSON(raw)
		if err != nil {
			log.Printf("Skipping import object %d: %v", i+1, err)
			continue
		}
		if err := config.DB.Create(&project).Error; err != nil {
			log.Printf("Skipping import object %d: %v", i+1, err)
			continue
		}
		imported = append(imported, project)
	}
	respondImported(w, imported)
}

func respondImported(w http.ResponseWriter, imported []models.Project) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  fmt.Sprintf("Imported %d projects", len(imported)),
		"imported": imported,
	})
}

// parseCSVRows pairs header names to values by position. The split is
// a plain comma split with trimming, so fields holding literal commas
// are not supported; that matches what the dashboard's sample files use.
func parseCSVRows(text string) []map[string]string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []map[string]string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		row := map[string]string{}
		for i, h := range headers {
			if i < len(values) {
				row[h] = strings.TrimSpace(values[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func projectFromCSVRow(row map[string]string) (models.Project, error) {
	var project models.Project

	if row["name"] == "" {
		return project, fmt.Errorf("missing name")
	}
	started, err := models.ParseDate(row["dateStarted"])
	if err != nil {
		return project, fmt.Errorf("dateStarted: %w", err)
	}

	project.Name = row["name"]
	project.Address = row["address"]
	project.DateStarted = models.JSONTime(started)

	if v := row["description"]; v != "" {
		project.Description = &v
	}
	if v := row["dateCompleted"]; v != "" {
		completed, err := models.ParseDate(v)
		if err != nil {
			return project, fmt.Errorf("dateCompleted: %w", err)
		}
		jt := models.JSONTime(completed)
		project.DateCompleted = &jt
	}
	if v := row["unitsPlanned"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return project, fmt.Errorf("unitsPlanned: %w", err)
		}
		project.UnitsPlanned = &n
	}
	if v := row["qualityRating"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return project, fmt.Errorf("qualityRating: %w", err)
		}
		project.QualityRating = &n
	}
	if v := row["supervisor"]; v != "" {
		project.Supervisor = &v
	}
	if v := row["notes"]; v != "" {
		project.Notes = &v
	}
	if v := row["issues"]; v != "" {
		project.Issues = &v
	}

	project.Status = row["status"]
	if project.Status == "" {
		project.Status = "active"
	}
	return project, nil
}

// splitJSONObjects accepts either a single object or an array of
// objects and returns the elements undecoded, so one bad element
// cannot poison the batch.
func splitJSONObjects(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var single json.RawMessage
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []json.RawMessage{single}, nil
}

func projectFromJSON(raw json.RawMessage) (models.Project, error) {
	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return project, err
	}
	project.ID = uuid.Nil // ids are never taken from the payload
	if project.Name == "" {
		return project, fmt.Errorf("missing name")
	}
	if time.Time(project.DateStarted).IsZero() {
		return project, fmt.Errorf("missing dateStarted")
	}
	if project.Status == "" {
		project.Status = "active"
	}
	return project, nil
}

// archiveUpload keeps a copy of the raw payload, best effort.
func archiveUpload(filename string, data []byte) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("Failed to create upload directory: %v", err)
		return
	}
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(uploadDir, fmt.Sprintf("%s-%s", timestamp, filepath.Base(filename)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Failed to archive upload %s: %v", filename, err)
	}
}
