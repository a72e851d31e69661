package models

import "time"

// SubjectID is nullable and not enforced at the database level: a quiz may
// reference a subject that was never created, and the listing left-join has
// to tolerate that.
type Quiz struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	SubjectID *uint     `gorm:"index" json:"subject_id,omitempty"`
	Subject   *Subject  `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
