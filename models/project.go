package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a tracked construction job. Installations and material
// needs belong to exactly one project and are removed with it.
type Project struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	DateStarted   JSONTime  `gorm:"not null" json:"dateStarted"`
	DateCompleted *JSONTime `json:"dateCompleted,omitempty"`

	UnitsPlanned   *int `json:"unitsPlanned,omitempty"`
	UnitsCompleted int  `gorm:"not null;default:0" json:"unitsCompleted"`

	// 1-10 by UI convention, not enforced here
	QualityRating *int `json:"qualityRating,omitempty"`

	Supervisor *string `gorm:"size:255" json:"supervisor,omitempty"`
	Notes      *string `gorm:"type:text" json:"notes,omitempty"`
	Issues     *string `gorm:"type:text" json:"issues,omitempty"`
	Status     string  `gorm:"size:50;not null;default:'active';index" json:"status"` // active, completed, on-hold

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Installations   []Installation `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"installations,omitempty"`
	MaterialsNeeded []MaterialNeed `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"materialsNeeded,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
