package domain

import "time"

const (
	FlagStatusUnresolved = "unresolved"
	FlagStatusResolved   = "resolved"
)

// Flag is a report against a piece of course content, usually a chat message.
type Flag struct {
	ID         string     `gorm:"type:char(12);primaryKey" json:"id"`
	CourseID   string     `gorm:"type:char(12);not null;index" json:"course_id"`
	ReporterID string     `gorm:"type:char(12);not null;index" json:"reporter_id"`
	MessageID  *string    `gorm:"type:char(12);index" json:"message_id,omitempty"`
	Excerpt    string     `gorm:"column:excerpt;not null" json:"excerpt"`
	Reason     string     `gorm:"column:reason;not null;default:''" json:"reason"`
	Status     string     `gorm:"column:status;not null;default:'unresolved';index" json:"status"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func (Flag) TableName() string { return "flag" }
