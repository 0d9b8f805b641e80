package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleCSV = `name,address,dateStarted,unitsPlanned,supervisor,status
Riverside Flats,12 Quay St,2025-03-10,40,M. Reyes,active
Harbor Tower,1 Dock Rd,not-a-date,20,J. Park,active
Cedar Court,9 Cedar Ln,2025-04-02,12,,
`

func TestParseCSVRows(t *testing.T) {
	rows := parseCSVRows(sampleCSV)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Riverside Flats" {
		t.Errorf("row 0 name = %q", rows[0]["name"])
	}
	if rows[0]["unitsPlanned"] != "40" {
		t.Errorf("row 0 unitsPlanned = %q", rows[0]["unitsPlanned"])
	}
	if rows[2]["supervisor"] != "" {
		t.Errorf("row 2 supervisor = %q, expected empty", rows[2]["supervisor"])
	}
}

func TestParseCSVRowsSkipsBlankLines(t *testing.T) {
	rows := parseCSVRows("name,address\n\nA,B\n  \nC,D\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestParseCSVRowsNoQuoteHandling(t *testing.T) {
	// naive split by contract: a quoted comma still splits the field
	rows := parseCSVRows("name,address\n\"A, Inc\",HQ\n")
	if rows[0]["name"] != "\"A" {
		t.Errorf("expected naive split, got name=%q", rows[0]["name"])
	}
}

func TestProjectFromCSVRow(t *testing.T) {
	rows := parseCSVRows(sampleCSV)

	ok := 0
	var errs []error
	for _, row := range rows {
		if _, err := projectFromCSVRow(row); err != nil {
			errs = append(errs, err)
			continue
		}
		ok++
	}

	// row 2 has an unparseable dateStarted and only that row fails
	if ok != 2 {
		t.Errorf("expected 2 importable rows, got %d", ok)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 failed row, got %d", len(errs))
	}
}

func TestProjectFromCSVRowFields(t *testing.T) {
	row := map[string]string{
		"name":          "Cedar Court",
		"address":       "9 Cedar Ln",
		"dateStarted":   "2025-04-02",
		"dateCompleted": "2025-08-20",
		"unitsPlanned":  "12",
		"qualityRating": "9",
		"supervisor":    "T. Okafor",
		"notes":         "phase two pending",
	}

	p, err := projectFromCSVRow(row)
	if err != nil {
		t.Fatalf("projectFromCSVRow() error: %v", err)
	}

	if got := time.Time(p.DateStarted); got != time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC) {
		t.Errorf("dateStarted = %v", got)
	}
	if p.DateCompleted == nil {
		t.Error("dateCompleted not set")
	}
	if p.UnitsPlanned == nil || *p.UnitsPlanned != 12 {
		t.Errorf("unitsPlanned = %v", p.UnitsPlanned)
	}
	if p.QualityRating == nil || *p.QualityRating != 9 {
		t.Errorf("qualityRating = %v", p.QualityRating)
	}
	if p.Supervisor == nil || *p.Supervisor != "T. Okafor" {
		t.Errorf("supervisor = %v", p.Supervisor)
	}
	if p.Status != "active" {
		t.Errorf("status = %q, expected default active", p.Status)
	}
}

func TestProjectFromCSVRowErrors(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]string
	}{
		{"missing name", map[string]string{"address": "A", "dateStarted": "2025-01-01"}},
		{"bad dateStarted", map[string]string{"name": "P", "dateStarted": "yesterday"}},
		{"bad dateCompleted", map[string]string{"name": "P", "dateStarted": "2025-01-01", "dateCompleted": "soon"}},
		{"bad unitsPlanned", map[string]string{"name": "P", "dateStarted": "2025-01-01", "unitsPlanned": "many"}},
		{"bad qualityRating", map[string]string{"name": "P", "dateStarted": "2025-01-01", "qualityRating": "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := projectFromCSVRow(tt.row); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSplitJSONObjects(t *testing.T) {
	items, err := splitJSONObjects([]byte(`[{"name":"A"},{"name":"B"}]`))
	if err != nil {
		t.Fatalf("array payload: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}

	items, err = splitJSONObjects([]byte(`{"name":"A"}`))
	if err != nil {
		t.Fatalf("single object payload: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item, got %d", len(items))
	}

	if _, err = splitJSONObjects([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func multipartUpload(t *testing.T, field, filename, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write([]byte(body))
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	// rejection happens before any row is parsed or stored
	req := multipartUpload(t, "file", "projects.txt", "name,address\nA,B\n")
	rec := httptest.NewRecorder()
	UploadProjects(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unsupported file format") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadRequiresFile(t *testing.T) {
	req := multipartUpload(t, "", "", "")
	rec := httptest.NewRecorder()
	UploadProjects(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No file provided") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestProjectFromJSON(t *testing.T) {
	p, err := projectFromJSON([]byte(`{"name":"A","address":"HQ","dateStarted":"2025-02-01","unitsPlanned":8}`))
	if err != nil {
		t.Fatalf("projectFromJSON() error: %v", err)
	}
	if p.Status != "active" {
		t.Errorf("status = %q, expected default active", p.Status)
	}
	if p.UnitsPlanned == nil || *p.UnitsPlanned != 8 {
		t.Errorf("unitsPlanned = %v", p.UnitsPlanned)
	}

	if _, err := projectFromJSON([]byte(`{"name":"A","dateStarted":"not-a-date"}`)); err == nil {
		t.Error("expected error for bad date")
	}
	if _, err := projectFromJSON([]byte(`{"address":"HQ","dateStarted":"2025-02-01"}`)); err == nil {
		t.Error("expected error for missing name")
	}
}
