package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Entity IDs are the 12-hex strings produced by internal/idgen.

// Course rows are permanent; a code stays claimed once issued.
type Course struct {
	ID          string    `gorm:"type:char(12);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;index" json:"name"`
	Code        string    `gorm:"type:char(6);column:code;not null;uniqueIndex" json:"code"`
	Description string    `gorm:"column:description;not null;default:''" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "course" }

const (
	DivisionKindTopic = "topic"
	DivisionKindWeek  = "week"
)

// Division is a topic or week instance of a course.
type Division struct {
	ID        string    `gorm:"type:char(12);primaryKey" json:"id"`
	CourseID  string    `gorm:"type:char(12);not null;index" json:"course_id"`
	Kind      string    `gorm:"column:kind;not null;default:'topic'" json:"kind"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Position  int       `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Division) TableName() string { return "division" }

type Item struct {
	ID         string    `gorm:"type:char(12);primaryKey" json:"id"`
	DivisionID string    `gorm:"type:char(12);not null;index" json:"division_id"`
	CourseID   string    `gorm:"type:char(12);not null;index" json:"course_id"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Item) TableName() string { return "item" }

type LearningObjective struct {
	ID        string    `gorm:"type:char(12);primaryKey" json:"id"`
	ItemID    string    `gorm:"type:char(12);not null;index" json:"item_id"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (LearningObjective) TableName() string { return "learning_objective" }

type Material struct {
	ID          string         `gorm:"type:char(12);primaryKey" json:"id"`
	ItemID      string         `gorm:"type:char(12);not null;index" json:"item_id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	ContentType string         `gorm:"column:content_type;not null;default:''" json:"content_type"`
	SizeBytes   int64          `gorm:"column:size_bytes;not null;default:0" json:"size_bytes"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

func (Material) TableName() string { return "material" }
