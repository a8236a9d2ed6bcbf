package service

import (
	"context"

	"team-membership-service/internal/model"
)

// RoleFilter выбирает срез справочника для поиска: все пользователи
// или только менеджеры (ADMIN и PROJECT_MANAGER).
type RoleFilter string

const (
	// FilterMembers — поиск без ограничения по ролям.
	FilterMembers RoleFilter = "members"
	// FilterManagers — поиск только среди менеджерских ролей.
	FilterManagers RoleFilter = "managers"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	SearchByUsername(ctx context.Context, prefix string, roles []model.Role) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// UserService содержит бизнес-логику поиска по справочнику пользователей.
type UserService struct {
	repo UserRepository
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Search возвращает пользователей по префиксу юзернейма.
// Фильтр managers сужает выдачу до ролей ADMIN и PROJECT_MANAGER;
// фильтр members (и только он) отдаёт пользователей всех ролей.
func (s *UserService) Search(ctx context.Context, query string, filter RoleFilter) ([]model.User, error) {
	if query == "" {
		return []model.User{}, nil
	}

	var roles []model.Role
	if filter != FilterMembers {
		roles = model.ManagerRoles
	}

	users, err := s.repo.SearchByUsername(ctx, query, roles)
	if err != nil {
		return nil, ErrInternal("failed to search users", err)
	}
	return users, nil
}
