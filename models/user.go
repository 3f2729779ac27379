package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	ResetToken     string    `json:"-"`
	ResetTokenExp  time.Time `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
