package project

import (
	"fmt"
	"time"

	vo "helioscale/internal/domain/project/valueobjects"
)

// Image is an insert-only child of a project. Path points at a file
// under the uploads directory.
type Image struct {
	ID        uint
	ProjectID uint
	Path      string
	Caption   string
	CreatedAt time.Time
}

type Project struct {
	id            uint
	title         string
	description   string
	status        vo.ProjectStatus
	location      string
	startDate     *time.Time
	endDate       *time.Time
	creatorID     uint
	teamMemberIDs []uint
	images        []Image
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProject(
	title string,
	description string,
	location string,
	startDate, endDate *time.Time,
	creatorID uint,
) (*Project, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	now := time.Now()
	return &Project{
		title:         title,
		description:   description,
		status:        vo.StatusPlanned,
		location:      location,
		startDate:     startDate,
		endDate:       endDate,
		creatorID:     creatorID,
		teamMemberIDs: []uint{},
		images:        []Image{},
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructProject(
	id uint,
	title, description string,
	status vo.ProjectStatus,
	location string,
	startDate, endDate *time.Time,
	creatorID uint,
	teamMemberIDs []uint,
	images []Image,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if teamMemberIDs == nil {
		teamMemberIDs = []uint{}
	}
	if images == nil {
		images = []Image{}
	}

	return &Project{
		id:            id,
		title:         title,
		description:   description,
		status:        status,
		location:      location,
		startDate:     startDate,
		endDate:       endDate,
		creatorID:     creatorID,
		teamMemberIDs: teamMemberIDs,
		images:        images,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Project) ID() uint                 { return p.id }
func (p *Project) Title() string            { return p.title }
func (p *Project) Description() string      { return p.description }
func (p *Project) Status() vo.ProjectStatus { return p.status }
func (p *Project) Location() string         { return p.location }
func (p *Project) StartDate() *time.Time    { return p.startDate }
func (p *Project) EndDate() *time.Time      { return p.endDate }
func (p *Project) CreatorID() uint          { return p.creatorID }
func (p *Project) CreatedAt() time.Time     { return p.createdAt }
func (p *Project) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Project) TeamMemberIDs() []uint {
	ids := make([]uint, len(p.teamMemberIDs))
	copy(ids, p.teamMemberIDs)
	return ids
}

func (p *Project) Images() []Image {
	images := make([]Image, len(p.images))
	copy(images, p.images)
	return images
}

// GetOwnerID implements authorization.OwnedResource. Projects are
// owned by the admin who created them.
func (p *Project) GetOwnerID() uint { return p.creatorID }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// AssignTeam replaces the full team membership.
func (p *Project) AssignTeam(memberIDs []uint) error {
	seen := make(map[uint]bool, len(memberIDs))
	for _, id := range memberIDs {
		if id == 0 {
			return fmt.Errorf("team member ID cannot be zero")
		}
		if seen[id] {
			return fmt.Errorf("duplicate team member ID: %d", id)
		}
		seen[id] = true
	}

	ids := make([]uint, len(memberIDs))
	copy(ids, memberIDs)
	p.teamMemberIDs = ids
	p.updatedAt = time.Now()
	return nil
}

// HasTeamMember reports whether the employee is on the project team.
func (p *Project) HasTeamMember(accountID uint) bool {
	for _, id := range p.teamMemberIDs {
		if id == accountID {
			return true
		}
	}
	return false
}

// AddImage appends an image. Images are insert-only.
func (p *Project) AddImage(path, caption string) error {
	if len(path) == 0 {
		return fmt.Errorf("image path is required")
	}
	p.images = append(p.images, Image{
		ProjectID: p.id,
		Path:      path,
		Caption:   caption,
		CreatedAt: time.Now(),
	})
	p.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the project through its lifecycle.
func (p *Project) ChangeStatus(newStatus vo.ProjectStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}
	p.status = newStatus
	p.updatedAt = time.Now()
	return nil
}
