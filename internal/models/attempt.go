package models

import "time"

// The composite unique index on (user_id, quiz_id) is what guarantees
// at most one attempt per user per quiz, even when two submissions race.
type Attempt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_attempts_user_quiz" json:"user_id"`
	QuizID      uint      `gorm:"not null;uniqueIndex:idx_attempts_user_quiz" json:"quiz_id"`
	Quiz        Quiz      `gorm:"foreignKey:QuizID" json:"-"`
	StudentName string    `gorm:"size:255;not null" json:"student_name"`
	Score       int       `gorm:"not null" json:"score"`
	Total       int       `gorm:"not null" json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}
