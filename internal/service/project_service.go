package service

import (
	"context"
	"errors"

	"team-membership-service/internal/model"
	"team-membership-service/internal/repository"
)

// ProjectRepository описывает контракт репозитория проектов для бизнес-слоя.
type ProjectRepository interface {
	GetByID(ctx context.Context, projectID string) (model.Project, error)
	UpdateMetadata(ctx context.Context, p model.Project) (model.Project, error)
}

// ProjectService содержит бизнес-логику редактирования метаданных проекта:
// статус, приоритет и локализованные описания.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService создаёт новый сервис для операций над проектами.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// GetProject возвращает проект с его локализованными описаниями.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (model.Project, error) {
	if projectID == "" {
		return model.Project{}, ErrBadRequest("project_id is required")
	}
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return model.Project{}, ErrNotFound("project not found")
		}
		return model.Project{}, ErrInternal("failed to get project", err)
	}
	return p, nil
}

// UpdateInfo валидирует и сохраняет метаданные проекта.
// Статус и приоритет обязаны быть допустимыми значениями перечислений,
// локаль по умолчанию обязана присутствовать в описаниях и иметь имя.
func (s *ProjectService) UpdateInfo(ctx context.Context, p model.Project) (model.Project, error) {
	if p.ProjectID == "" {
		return model.Project{}, ErrBadRequest("project_id is required")
	}
	if !p.Status.Valid() {
		return model.Project{}, ErrBadRequest("status must be one of DRAFT, PUBLISHED, ARCHIVED")
	}
	if !p.Priority.Valid() {
		return model.Project{}, ErrBadRequest("priority must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	if p.DefaultLocale == "" {
		return model.Project{}, ErrBadRequest("default_locale is required")
	}

	defaultNamed := false
	seen := make(map[string]struct{}, len(p.Info))
	for _, info := range p.Info {
		if info.Locale == "" {
			return model.Project{}, ErrBadRequest("project_info locale is required")
		}
		if _, dup := seen[info.Locale]; dup {
			return model.Project{}, ErrBadRequest("duplicate locale: " + info.Locale)
		}
		seen[info.Locale] = struct{}{}
		if info.Locale == p.DefaultLocale && info.Name != "" {
			defaultNamed = true
		}
	}
	if !defaultNamed {
		return model.Project{}, ErrBadRequest("project name is required for the default locale")
	}

	updated, err := s.repo.UpdateMetadata(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return model.Project{}, ErrNotFound("project not found")
		}
		return model.Project{}, ErrInternal("failed to update project", err)
	}
	return updated, nil
}
