package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/models"
	"github.com/hogl3g/tracker/utils"
)

// projectExportHeaders fixes the column order for tabular exports.
var projectExportHeaders = []string{
	"id", "name", "address", "description", "dateStarted", "dateCompleted",
	"unitsPlanned", "unitsCompleted", "qualityRating", "supervisor",
	"notes", "issues", "status", "createdAt",
}

// ExportProjects downloads the project list as csv (default), json or xlsx.
func ExportProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := config.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("Failed to fetch projects for export: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	filename := fmt.Sprintf("projects_%s", time.Now().Format("20060102_150405"))

	switch format := r.URL.Query().Get("format"); format {
	case "json":
		body, err := utils.MarshalRowsJSON(projects)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to generate export")
			return
		}
		sendDownload(w, filename+".json", "application/json", []byte(body))

	case "xlsx":
		f, err := projectsExcelFile(projects)
		if err != nil {
			log.Printf("Failed to generate Excel export: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
			return
		}
		buffer, err := f.WriteToBuffer()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to write Excel file")
			return
		}
		sendDownload(w, filename+".xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())

	case "", "csv":
		rows := make([]map[string]interface{}, len(projects))
		for i, p := range projects {
			rows[i] = projectExportRow(p)
		}
		body, err := utils.MarshalRowsCSV(projectExportHeaders, rows)
		if err == utils.ErrNoRows {
			respondJSON(w, http.StatusOK, map[string]string{"warning": "No data to export"})
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to generate export")
			return
		}
		sendDownload(w, filename+".csv", "text/csv", []byte(body))

	default:
		respondError(w, http.StatusBadRequest, "Unsupported export format")
	}
}

// ExportProjectReport downloads the plain-text quality report for one project.
func ExportProjectReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var project models.Project
	if err := config.DB.First(&project, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("Failed to fetch project %s for report: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	body := utils.ProjectReportText(project)
	filename := fmt.Sprintf("%s_report_%s.txt", sanitizeFilename(project.Name),
		time.Now().Format("20060102_150405"))
	sendDownload(w, filename, "text/plain", []byte(body))
}

func sendDownload(w http.ResponseWriter, filename, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func projectExportRow(p models.Project) map[string]interface{} {
	row := map[string]interface{}{
		"id":             p.ID.String(),
		"name":           p.Name,
		"address":        p.Address,
		"dateStarted":    time.Time(p.DateStarted).Format("2006-01-02"),
		"unitsCompleted": p.UnitsCompleted,
		"status":         p.Status,
		"createdAt":      p.CreatedAt.Format(time.RFC3339),
	}
	if p.Description != nil {
		row["description"] = *p.Description
	}
	if p.DateCompleted != nil {
		row["dateCompleted"] = time.Time(*p.DateCompleted).Format("2006-01-02")
	}
	if p.UnitsPlanned != nil {
		row["unitsPlanned"] = *p.UnitsPlanned
	}
	if p.QualityRating != nil {
		row["qualityRating"] = *p.QualityRating
	}
	if p.Supervisor != nil {
		row["supervisor"] = *p.Supervisor
	}
	if p.Notes != nil {
		row["notes"] = *p.Notes
	}
	if p.Issues != nil {
		row["issues"] = *p.Issues
	}
	return row
}

// projectsExcelFile builds the styled workbook for the xlsx download.
func projectsExcelFile(projects []models.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Projects"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Construction Projects")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	for colIdx, header := range projectExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), 18)
	}

	for rowIdx, p := range projects {
		row := projectExportRow(p)
		for colIdx, header := range projectExportHeaders {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if value, ok := row[header]; ok {
				f.SetCellValue(sheetName, cell, value)
			}
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func sanitizeFilename(filename string) string {
	replacements := map[rune]rune{
		'/':  '_',
		'\\': '_',
		':':  '_',
		'*':  '_',
		'?':  '_',
		'"':  '_',
		'<':  '_',
		'>':  '_',
		'|':  '_',
		' ':  '_',
	}

	result := []rune{}
	for _, char := range filename {
		if replacement, exists := replacements[char]; exists {
			result = append(result, replacement)
		} else {
			result = append(result, char)
		}
	}
	return string(result)
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}
