package project

import (
	"context"

	vo "helioscale/internal/domain/project/valueobjects"
)

type Repository interface {
	// Save persists the project and its initial team membership. The
	// repository must write both in one transaction when called inside
	// a TransactionManager scope.
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, int64, error)
	// ReplaceTeam atomically swaps the project's team membership.
	ReplaceTeam(ctx context.Context, projectID uint, memberIDs []uint) error
	// AddImage appends a single image row.
	AddImage(ctx context.Context, image *Image) error
}

type Filter struct {
	Status    *vo.ProjectStatus
	CreatorID *uint
	MemberID  *uint
	// PublicOnly restricts listings to projects past the planning
	// stage, which is what unauthenticated visitors may see.
	PublicOnly bool
	Page       int
	PageSize   int
}
