package entity

import "database/sql"

type User struct {
	Base
	Account      string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Name         string
	Introduction sql.NullString
	Avatar       string
	Cover        string
	Role         string `gorm:"default:user"`
}

const (
	AdminRole = "admin"
	UserRole  = "user"
)
