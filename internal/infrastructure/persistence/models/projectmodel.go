package models

import "time"

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	Location    string `gorm:"size:200"`
	StartDate   *time.Time
	EndDate     *time.Time
	CreatorID   uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectMemberModel is the join table between projects and employee
// accounts. Rows are replaced wholesale on reassignment.
type ProjectMemberModel struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;index:idx_project_member,unique"`
	AccountID uint `gorm:"not null;index:idx_project_member,unique"`
	CreatedAt time.Time
}

func (ProjectMemberModel) TableName() string {
	return "project_members"
}

// ProjectImageModel rows are insert-only.
type ProjectImageModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index"`
	Path      string `gorm:"size:500;not null"`
	Caption   string `gorm:"size:200"`
	CreatedAt time.Time
}

func (ProjectImageModel) TableName() string {
	return "project_images"
}
