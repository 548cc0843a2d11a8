package model

import "time"

type Application struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProjectID      uint      `gorm:"not null;index" json:"projectId"`
	VolunteerName  string    `gorm:"not null" json:"volunteerName"`
	VolunteerEmail string    `gorm:"not null" json:"volunteerEmail"`
	VolunteerPhone string    `json:"volunteerPhone"`
	Motivation     string    `json:"motivation"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// InsertApplication is the subset of Application a client may supply at
// creation time.
type InsertApplication struct {
	ProjectID      uint   `json:"projectId"`
	VolunteerName  string `json:"volunteerName"`
	VolunteerEmail string `json:"volunteerEmail"`
	VolunteerPhone string `json:"volunteerPhone"`
	Motivation     string `json:"motivation"`
}
