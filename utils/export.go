package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hogl3g/tracker/models"
)

// ErrNoRows signals an empty export. Callers treat it as a warning,
// not a failure.
var ErrNoRows = errors.New("no data to export")

// MarshalRowsCSV renders rows in header order, one line per row plus a
// header line, each terminated by a newline.
//
// Rendering rules, kept exactly as the dashboard download behaves:
//   - nested objects/arrays are JSON-serialized with embedded quotes
//     doubled (and not wrapped, so they only survive comma-free)
//   - strings containing a comma are wrapped in quotes with embedded
//     quotes doubled
//   - nil, empty strings, zero numbers and false render as empty
//
// Fields holding literal commas in plain strings are therefore the
// caller's problem; this is a naive writer by contract, not an RFC 4180
// one. The download endpoints use encoding/csv where strict CSV matters.
func MarshalRowsCSV(headers []string, rows []map[string]interface{}) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\n")

	for _, row := range rows {
		values := make([]string, len(headers))
		for i, h := range headers {
			values[i] = renderCSVValue(row[h])
		}
		b.WriteString(strings.Join(values, ","))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func renderCSVValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.ReplaceAll(string(raw), `"`, `""`)
	case string:
		if v == "" {
			return ""
		}
		if strings.Contains(v, ",") {
			return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return formatFloat(v)
	case int:
		if v == 0 {
			return ""
		}
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}

// MarshalRowsJSON renders the collection as indented JSON, verbatim.
func MarshalRowsJSON(rows interface{}) (string, error) {
	raw, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ProjectReportText renders the fixed-layout plain-text quality report
// for a single project, substituting placeholders for absent fields and
// appending a generation timestamp.
func ProjectReportText(p models.Project) string {
	supervisor := "N/A"
	if p.Supervisor != nil && *p.Supervisor != "" {
		supervisor = *p.Supervisor
	}

	completionDate := "In Progress"
	if p.DateCompleted != nil {
		completionDate = time.Time(*p.DateCompleted).Format("Jan 2, 2006")
	}

	unitsPlanned := "N/A"
	completionRate := "N/A"
	if p.UnitsPlanned != nil && *p.UnitsPlanned != 0 {
		unitsPlanned = fmt.Sprintf("%d", *p.UnitsPlanned)
		completionRate = fmt.Sprintf("%d", int(math.Round(float64(p.UnitsCompleted)/float64(*p.UnitsPlanned)*100)))
	}

	qualityRating := "N/A"
	if p.QualityRating != nil && *p.QualityRating != 0 {
		qualityRating = fmt.Sprintf("%d", *p.QualityRating)
	}

	notes := "No notes"
	if p.Notes != nil && *p.Notes != "" {
		notes = *p.Notes
	}

	issues := "No issues reported"
	if p.Issues != nil && *p.Issues != "" {
		issues = *p.Issues
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n===========================================\n")
	fmt.Fprintf(&b, "PROJECT QUALITY REPORT\n")
	fmt.Fprintf(&b, "===========================================\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Address: %s\n", p.Address)
	fmt.Fprintf(&b, "Supervisor: %s\n", supervisor)
	fmt.Fprintf(&b, "Status: %s\n\n", p.Status)
	fmt.Fprintf(&b, "DATES\n")
	fmt.Fprintf(&b, "=====================================\n")
	fmt.Fprintf(&b, "Start Date: %s\n", time.Time(p.DateStarted).Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "Completion Date: %s\n\n", completionDate)
	fmt.Fprintf(&b, "UNITS & COMPLETION\n")
	fmt.Fprintf(&b, "=====================================\n")
	fmt.Fprintf(&b, "Units Completed: %d\n", p.UnitsCompleted)
	fmt.Fprintf(&b, "Units Planned: %s\n", unitsPlanned)
	fmt.Fprintf(&b, "Completion Rate: %s%%\n\n", completionRate)
	fmt.Fprintf(&b, "QUALITY METRICS\n")
	fmt.Fprintf(&b, "=====================================\n")
	fmt.Fprintf(&b, "Overall Quality Rating: %s/10\n\n", qualityRating)
	fmt.Fprintf(&b, "ADDITIONAL NOTES\n")
	fmt.Fprintf(&b, "=====================================\n")
	fmt.Fprintf(&b, "%s\n\n", notes)
	fmt.Fprintf(&b, "ISSUES\n")
	fmt.Fprintf(&b, "=====================================\n")
	fmt.Fprintf(&b, "%s\n\n", issues)
	fmt.Fprintf(&b, "Report Generated: %s\n", time.Now().Format("Jan 2, 2006 3:04:05 PM"))
	return b.String()
}
