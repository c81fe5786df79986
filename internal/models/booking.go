package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public identifier handed to clients.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ShiftID uint  `gorm:"index" json:"shift_id"`
	Shift   Shift `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shift"`

	// StartTime/EndTime are copied from the matched slot. A shift may
	// host several bookings on different slots of its span.
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
