package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helioscale/internal/domain/project"
	vo "helioscale/internal/domain/project/valueobjects"
	"helioscale/internal/infrastructure/persistence/mappers"
	"helioscale/internal/infrastructure/persistence/models"
	"helioscale/internal/shared/db"
	apperrors "helioscale/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(gdb *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     gdb,
		mapper: mappers.NewProjectMapper(),
	}
}

// Save persists the project row and its team membership rows. Callers
// wrap this in a TransactionManager scope so a failure between the two
// writes rolls both back.
func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return r.insertMembers(tx, model.ID, p.TeamMemberIDs())
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "location",
			"start_date", "end_date", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	memberIDs, err := r.loadMemberIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	var images []models.ProjectImageModel
	if err := tx.Where("project_id = ?", model.ID).
		Order("created_at ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to load project images: %w", err)
	}

	return r.mapper.ToDomain(&model, memberIDs, images)
}

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.MemberID != nil {
		query = query.Where("id IN (?)",
			tx.Model(&models.ProjectMemberModel{}).
				Select("project_id").
				Where("account_id = ?", *filter.MemberID))
	}
	if filter.PublicOnly {
		query = query.Where("status IN ?", []string{
			vo.StatusOngoing.String(),
			vo.StatusCompleted.String(),
		})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var rows []models.ProjectModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(rows))
	for i := range rows {
		memberIDs, err := r.loadMemberIDs(tx, rows[i].ID)
		if err != nil {
			return nil, 0, err
		}

		var images []models.ProjectImageModel
		if err := tx.Where("project_id = ?", rows[i].ID).
			Order("created_at ASC").
			Find(&images).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to load project images: %w", err)
		}

		p, err := r.mapper.ToDomain(&rows[i], memberIDs, images)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}

	return projects, total, nil
}

// ReplaceTeam deletes and reinserts the membership rows for a project.
// Callers wrap this in a TransactionManager scope.
func (r *ProjectRepository) ReplaceTeam(ctx context.Context, projectID uint, memberIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("project_id = ?", projectID).
		Delete(&models.ProjectMemberModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear project team: %w", err)
	}

	return r.insertMembers(tx, projectID, memberIDs)
}

func (r *ProjectRepository) AddImage(ctx context.Context, image *project.Image) error {
	model := r.mapper.ImageToModel(image)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project image: %w", err)
	}

	image.ID = model.ID
	return nil
}

func (r *ProjectRepository) insertMembers(tx *gorm.DB, projectID uint, memberIDs []uint) error {
	if len(memberIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.ProjectMemberModel, 0, len(memberIDs))
	for _, id := range memberIDs {
		rows = append(rows, models.ProjectMemberModel{
			ProjectID: projectID,
			AccountID: id,
			CreatedAt: now,
		})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save project team: %w", err)
	}

	return nil
}

func (r *ProjectRepository) loadMemberIDs(tx *gorm.DB, projectID uint) ([]uint, error) {
	var memberIDs []uint
	if err := tx.Model(&models.ProjectMemberModel{}).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Pluck("account_id", &memberIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load project team: %w", err)
	}
	return memberIDs, nil
}
