// Package model defines database models
package model

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique; not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Tokens []Token `gorm:"foreignKey:UserID" json:"-"`
	Todos  []Todo  `gorm:"foreignKey:UserID" json:"-"`
}
