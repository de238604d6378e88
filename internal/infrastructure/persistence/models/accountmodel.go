package models

import "time"

// AccountModel is the persistence model for accounts. It is the
// anti-corruption layer between the domain aggregate and the database.
type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	Phone        string `gorm:"size:30"`
	Company      string `gorm:"size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	IsAdmin      bool   `gorm:"not null;default:false;index"`
	IsEmployee   bool   `gorm:"not null;default:false;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsVerified   bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AccountModel) TableName() string {
	return "accounts"
}
