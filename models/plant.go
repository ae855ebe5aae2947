package models

import (
	"time"

	"gorm.io/gorm"
)

type Plant struct {
	ID                  string         `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name                string         `gorm:"not null;index" json:"name"` // English name
	NameGujarati        string         `json:"nameGujarati"`
	Image               string         `json:"image"`
	Images              []string       `gorm:"serializer:json" json:"images"`
	Description         string         `json:"description"`
	DescriptionGujarati string         `json:"descriptionGujarati"`
	CategoryID          string         `gorm:"index" json:"category"`
	Tag                 string         `json:"tag"`
	Benefits            []string       `gorm:"serializer:json" json:"benefits"`
	BenefitsGujarati    []string       `gorm:"serializer:json" json:"benefitsGujarati"`
	Difficulty          string         `gorm:"type:VARCHAR(10)" json:"difficulty"`
	Stock               int            `json:"stock"`
	InStock             bool           `json:"inStock"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// SyncStock keeps InStock in line with the counter.
func (p *Plant) SyncStock() {
	p.InStock = p.Stock > 0
}
