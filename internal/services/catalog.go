package services

import (
	"errors"
	"strings"

	"eduprep/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNameRequired         = errors.New("subject name is required")
	ErrTitleRequired        = errors.New("quiz title is required")
	ErrQuestionRequired     = errors.New("question text is required")
	ErrInvalidCorrectOption = errors.New("correct option must be one of A, B, C, D")
	ErrQuizNotFound         = errors.New("quiz not found")
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListQuizzes returns all quizzes newest first with their subject preloaded.
// Subject stays nil for unlinked quizzes and for dangling subject references.
func (s *CatalogService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Preload("Subject").
		Order("created_at DESC, id DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *CatalogService) GetQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Subject").First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *CatalogService) ListQuestions(quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *CatalogService) ListSubjects() ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.Order("created_at DESC, id DESC").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// ListAllQuestions feeds the admin console, newest first.
func (s *CatalogService) ListAllQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id DESC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *CatalogService) CreateSubject(name, grade, term string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	subject := models.Subject{
		Name:  name,
		Grade: strings.TrimSpace(grade),
		Term:  strings.TrimSpace(term),
	}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

// CreateQuiz does not verify that subjectID references an existing subject;
// the read path tolerates dangling references via the left join.
func (s *CatalogService) CreateQuiz(title string, subjectID *uint) (*models.Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	quiz := models.Quiz{
		Title:     title,
		SubjectID: subjectID,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *CatalogService) CreateQuestion(quizID uint, text, optionA, optionB, optionC, optionD, correct string) (*models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrQuestionRequired
	}

	correct = strings.ToUpper(strings.TrimSpace(correct))
	switch correct {
	case "A", "B", "C", "D":
	default:
		return nil, ErrInvalidCorrectOption
	}

	question := models.Question{
		QuizID:  quizID,
		Text:    text,
		OptionA: strings.TrimSpace(optionA),
		OptionB: strings.TrimSpace(optionB),
		OptionC: strings.TrimSpace(optionC),
		OptionD: strings.TrimSpace(optionD),
		Correct: correct,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion is a hard delete. Deleting an id that does not exist is a
// no-op, not an error.
func (s *CatalogService) DeleteQuestion(questionID uint) error {
	return s.db.Delete(&models.Question{}, questionID).Error
}
