package domain

import "time"

// User is a global user keyed by the ID derived from the external PUID.
type User struct {
	ID          string    `gorm:"type:char(12);primaryKey" json:"id"`
	PUID        string    `gorm:"column:puid;not null;uniqueIndex" json:"puid"`
	DisplayName string    `gorm:"column:display_name;not null" json:"display_name"`
	Affiliation string    `gorm:"column:affiliation;not null" json:"affiliation"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "app_user" }
