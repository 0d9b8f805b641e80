package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a persisted snapshot of computed metrics for one project,
// or a global zero-valued shell when ProjectID is nil. Reports are
// never updated in place; regeneration inserts a new row.
type Report struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"projectId,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"project,omitempty"`

	ReportType string `gorm:"size:50;not null;default:'daily'" json:"reportType"`

	TotalUnitsCompleted int `gorm:"not null;default:0" json:"totalUnitsCompleted"`
	TotalUnitsPlanned   int `gorm:"not null;default:0" json:"totalUnitsPlanned"`

	// Snapshot values; they can go stale relative to the project row.
	CompletionPercentage float64 `gorm:"not null;default:0" json:"completionPercentage"`
	AverageQualityScore  float64 `gorm:"not null;default:0" json:"averageQualityScore"`
	IssuesCount          int     `gorm:"not null;default:0" json:"issuesCount"`

	// Serialized summary, JSON for project reports, empty for the
	// degenerate global shell.
	Content string `gorm:"type:text" json:"content"`

	GeneratedAt time.Time `gorm:"autoCreateTime;index" json:"generatedAt"`
}

func (Report) TableName() string {
	return "reports"
}
