package models

import "time"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Kind        string `gorm:"size:20;not null;index"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	OwnerID     uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Note: no foreign key constraints or associations. Relationships
	// are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
