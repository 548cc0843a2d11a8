package model

import "time"

type ProjectStatus string

const (
	StatusAvailable ProjectStatus = "available"
	StatusAccepted  ProjectStatus = "accepted"
)

type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"not null" json:"title"`
	Description    string        `gorm:"not null" json:"description"`
	Category       string        `gorm:"not null" json:"category"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null;default:available" json:"status"`
	TimeCommitment string        `json:"timeCommitment"`
	Duration       string        `json:"duration"`
	Location       string        `json:"location"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// InsertProject is the subset of Project a client may supply at creation
// time. Status is optional and defaults to available.
type InsertProject struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	Status         ProjectStatus `json:"status"`
	TimeCommitment string        `json:"timeCommitment"`
	Duration       string        `json:"duration"`
	Location       string        `json:"location"`
}
