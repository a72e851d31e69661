package services

import (
	"errors"
	"strings"

	"eduprep/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStudentNameRequired = errors.New("student name is required")
	ErrAlreadyAttempted    = errors.New("quiz already attempted")
)

type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

// Submit scores the answers against the quiz's questions as they exist right
// now and records the attempt. Total is a snapshot: adding or deleting
// questions later never changes a past attempt.
//
// Answers are keyed by question id; comparison is case-insensitive. Missing
// answers and answers for question ids outside this quiz count as non-matches.
func (s *AttemptService) Submit(userID, quizID uint, studentName string, answers map[uint]string) (*models.Attempt, error) {
	studentName = strings.TrimSpace(studentName)
	if studentName == "" {
		return nil, ErrStudentNameRequired
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Attempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyAttempted
	}

	var questions []models.Question
	if err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}

	score := 0
	for _, q := range questions {
		if strings.EqualFold(answers[q.ID], q.Correct) {
			score++
		}
	}

	attempt := models.Attempt{
		UserID:      userID,
		QuizID:      quizID,
		StudentName: studentName,
		Score:       score,
		Total:       len(questions),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		// Two submissions racing past the count check both reach the insert;
		// the unique index on (user_id, quiz_id) rejects the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyAttempted
		}
		return nil, err
	}

	return &attempt, nil
}

func (s *AttemptService) ListByUser(userID uint) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := s.db.Where("user_id = ?", userID).
		Preload("Quiz").
		Order("created_at DESC, id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
