package models

import (
	"time"

	"github.com/google/uuid"
)

// Installation is one field-work unit record tied to a project.
type Installation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	Address        string    `gorm:"size:255;not null" json:"address"`
	UnitNumber     *string   `gorm:"size:50" json:"unitNumber,omitempty"`
	InstallDate    JSONTime  `gorm:"not null" json:"installDate"`
	CompletionDate *JSONTime `json:"completionDate,omitempty"`

	QualityScore *float64 `json:"qualityScore,omitempty"` // 1-10 by UI convention

	Status            string  `gorm:"size:50;not null;default:'pending'" json:"status"`
	IssuesEncountered *string `gorm:"type:text" json:"issuesEncountered,omitempty"`
	Notes             *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Installation) TableName() string {
	return "installations"
}
