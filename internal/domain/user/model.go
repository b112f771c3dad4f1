package user

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;size:64"`
	Email        string `json:"email" gorm:"size:255"`
	PasswordHash string `json:"-"`
}
