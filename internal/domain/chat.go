package domain

import "time"

type Chat struct {
	ID        string    `gorm:"type:char(12);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(12);not null;index" json:"user_id"`
	CourseID  string    `gorm:"type:char(12);not null;index" json:"course_id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Chat) TableName() string { return "chat" }

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	ID        string    `gorm:"type:char(12);primaryKey" json:"id"`
	ChatID    string    `gorm:"type:char(12);not null;index" json:"chat_id"`
	Role      string    `gorm:"column:role;not null;default:'user'" json:"role"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Message) TableName() string { return "chat_message" }
