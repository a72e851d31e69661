package models

type Question struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	QuizID  uint   `gorm:"not null;index" json:"quiz_id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	OptionA string `gorm:"size:500" json:"option_a"`
	OptionB string `gorm:"size:500" json:"option_b"`
	OptionC string `gorm:"size:500" json:"option_c"`
	OptionD string `gorm:"size:500" json:"option_d"`
	Correct string `gorm:"size:1;not null" json:"correct"`
}
