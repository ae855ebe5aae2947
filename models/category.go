package models

type Category struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name         string `gorm:"unique;not null" json:"name"`
	NameGujarati string `json:"nameGujarati"`
	Icon         string `json:"icon"`
}
