package models

import "time"

type Resource struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	// Capacity attributes shown on the admin screens. The matching
	// engine itself works with one booking per shift per slot.
	Quantity             int `gorm:"default:1" json:"quantity"`
	ProfessionalsPerUnit int `gorm:"default:1" json:"professionals_per_unit"`

	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
