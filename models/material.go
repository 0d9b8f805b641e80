package models

import (
	"time"

	"github.com/google/uuid"
)

// MaterialNeed is a tracked material requirement tied to a project.
type MaterialNeed struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	MaterialName string  `gorm:"size:255;not null" json:"materialName"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Unit         string  `gorm:"size:50;not null;default:'pieces'" json:"unit"`
	Status       string  `gorm:"size:50;not null;default:'needed'" json:"status"` // needed, ordered, received

	DateNeeded   *JSONTime `json:"dateNeeded,omitempty"`
	DateReceived *JSONTime `json:"dateReceived,omitempty"`

	Cost     *float64 `json:"cost,omitempty"`
	Supplier *string  `gorm:"size:255" json:"supplier,omitempty"`
	Notes    *string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MaterialNeed) TableName() string {
	return "material_needs"
}
