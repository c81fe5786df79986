package models

import "time"

type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`
	Professional   User `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ResourceID uint     `gorm:"index" json:"resource_id"`
	Resource   Resource `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"resource"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
