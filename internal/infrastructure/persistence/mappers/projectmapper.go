package mappers

import (
	"fmt"

	"helioscale/internal/domain/project"
	vo "helioscale/internal/domain/project/valueobjects"
	"helioscale/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities
// and persistence models. Team membership and images are loaded by the
// repository and passed in separately.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel, memberIDs []uint, images []models.ProjectImageModel) (*project.Project, error)
	ImageToDomain(model *models.ProjectImageModel) project.Image
	ImageToModel(image *project.Image) *models.ProjectImageModel
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Status:      p.Status().String(),
		Location:    p.Location(),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		CreatorID:   p.CreatorID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *ProjectMapperImpl) ToDomain(
	model *models.ProjectModel,
	memberIDs []uint,
	imageModels []models.ProjectImageModel,
) (*project.Project, error) {
	status, err := vo.NewProjectStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in project row (id=%d): %w", model.ID, err)
	}

	images := make([]project.Image, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, m.ImageToDomain(&imageModels[i]))
	}

	return project.ReconstructProject(
		model.ID,
		model.Title,
		model.Description,
		status,
		model.Location,
		model.StartDate,
		model.EndDate,
		model.CreatorID,
		memberIDs,
		images,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ProjectMapperImpl) ImageToDomain(model *models.ProjectImageModel) project.Image {
	return project.Image{
		ID:        model.ID,
		ProjectID: model.ProjectID,
		Path:      model.Path,
		Caption:   model.Caption,
		CreatedAt: model.CreatedAt,
	}
}

func (m *ProjectMapperImpl) ImageToModel(image *project.Image) *models.ProjectImageModel {
	return &models.ProjectImageModel{
		ID:        image.ID,
		ProjectID: image.ProjectID,
		Path:      image.Path,
		Caption:   image.Caption,
		CreatedAt: image.CreatedAt,
	}
}
