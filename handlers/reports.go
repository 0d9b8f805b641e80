package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
	"github.com/hogl3g/tracker/utils"
)

// GetAllReports lists generated reports newest first, optionally
// filtered to one project via ?projectId=.
func GetAllReports(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Order("generated_at DESC")
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var reports []models.Report
	if err := q.Find(&reports).Error; err != nil {
		log.Printf("Failed to fetch reports: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

type generateReportReq struct {
	ProjectID  string `json:"projectId"`
	ReportType string `json:"reportType"`
}

// reportContent is the human-readable summary serialized into
// Report.Content. Percentage and average are preformatted to two
// decimal places; the Report row keeps the raw floats.
type reportContent struct {
	ProjectName          string          `json:"projectName"`
	Address              string          `json:"address"`
	Supervisor           *string         `json:"supervisor"`
	Status               string          `json:"status"`
	DateStarted          models.JSONTime `json:"dateStarted"`
	TotalUnitsCompleted  int             `json:"totalUnitsCompleted"`
	TotalUnitsPlanned    int             `json:"totalUnitsPlanned"`
	CompletionPercentage string          `json:"completionPercentage"`
	AverageQualityScore  string          `json:"averageQualityScore"`
	InstallationsCount   int             `json:"installationsCount"`
	IssuesCount          int             `json:"issuesCount"`
	MaterialsCount       int             `json:"materialsCount"`
}

// GenerateReport computes and persists a metrics snapshot. Without a
// projectId it stores a zero-valued shell with empty content. It only
// reads the project and its children; it never writes them.
func GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	report := models.Report{
		ReportType: req.ReportType,
	}
	if report.ReportType == "" {
		report.ReportType = "daily"
	}

	if req.ProjectID != "" {
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid projectId")
			return
		}
		report.ProjectID = &projectID

		var project models.Project
		err = config.DB.
			Preload("Installations").
			Preload("MaterialsNeeded").
			First(&project, "id = ?", projectID).Error
		switch {
		case err == nil:
			fillReportMetrics(&report, &project)
		case err == gorm.ErrRecordNotFound:
			// keep the zero shell; the insert below fails on the
			// dangling project reference and reports a storage error
		default:
			log.Printf("Failed to load project %s for report: %v", projectID, err)
			respondError(w, http.StatusInternalServerError, "Failed to generate report")
			return
		}
	}

	if err := config.DB.Create(&report).Error; err != nil {
		log.Printf("Failed to generate report: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

func fillReportMetrics(report *models.Report, project *models.Project) {
	totalPlanned := 0
	if project.UnitsPlanned != nil {
		totalPlanned = *project.UnitsPlanned
	}
	totalCompleted := project.UnitsCompleted

	report.TotalUnitsCompleted = totalCompleted
	report.TotalUnitsPlanned = totalPlanned
	report.CompletionPercentage = utils.CompletionPercentage(totalCompleted, totalPlanned)
	report.AverageQualityScore = utils.AverageQualityScore(project.Installations)
	report.IssuesCount = utils.CountIssues(project.Installations)

	content := reportContent{
		ProjectName:          project.Name,
		Address:              project.Address,
		Supervisor:           project.Supervisor,
		Status:               project.Status,
		DateStarted:          project.DateStarted,
		TotalUnitsCompleted:  totalCompleted,
		TotalUnitsPlanned:    totalPlanned,
		CompletionPercentage: fmt.Sprintf("%.2f", report.CompletionPercentage),
		AverageQualityScore:  fmt.Sprintf("%.2f", report.AverageQualityScore),
		InstallationsCount:   len(project.Installations),
		IssuesCount:          report.IssuesCount,
		MaterialsCount:       len(project.MaterialsNeeded),
	}
	raw, err := json.Marshal(content)
	if err != nil {
		log.Printf("Failed to serialize report content for project %s: %v", project.ID, err)
		return
	}
	report.Content = string(raw)
}
