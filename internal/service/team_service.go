package service

import (
	"context"
	"errors"

	"team-membership-service/internal/model"
	"team-membership-service/internal/repository"
)

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
	GetTeamByID(ctx context.Context, teamID string) (model.Team, error)
	AddMember(ctx context.Context, teamID, username string, role model.Role) error
	ReplaceMembers(ctx context.Context, teamID string, members []model.TeamMember) error
	RemoveMember(ctx context.Context, teamID, username string) error
}

// TeamService содержит бизнес-логику чтения и изменения состава команды.
type TeamService struct {
	repo TeamRepository
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// CreateTeam валидирует входные данные и создаёт команду с начальным составом.
// При конфликте по team_id возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	if t.TeamID == "" {
		return model.Team{}, ErrBadRequest("team_id must not be empty")
	}
	if len(t.Members) == 0 {
		return model.Team{}, ErrBadRequest("members must not be empty")
	}

	team, err := s.repo.CreateTeam(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return model.Team{}, ErrConflict("TEAM_EXISTS", "team_id already exists")
		}
		return model.Team{}, ErrInternal("failed to create team", err)
	}
	return team, nil
}

// GetTeam возвращает команду по идентификатору вместе с её участниками.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (model.Team, error) {
	if teamID == "" {
		return model.Team{}, ErrBadRequest("team_id is required")
	}
	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to get team", err)
	}
	return team, nil
}

// SaveMembers целиком заменяет список участников команды.
// Список владеется вызывающей стороной и применяется как есть, без слияния.
// Сохранение пустого списка запрещено: в команде всегда остаётся хотя бы
// один участник, удалить последнего нельзя.
func (s *TeamService) SaveMembers(ctx context.Context, teamID string, members []model.TeamMember) (model.Team, error) {
	if teamID == "" {
		return model.Team{}, ErrBadRequest("team_id is required")
	}
	if len(members) == 0 {
		return model.Team{}, ErrBadRequest("cannot remove the last team member")
	}

	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Username == "" {
			return model.Team{}, ErrBadRequest("member username is required")
		}
		if _, dup := seen[m.Username]; dup {
			return model.Team{}, ErrBadRequest("duplicate member: " + m.Username)
		}
		seen[m.Username] = struct{}{}
	}

	if err := s.repo.ReplaceMembers(ctx, teamID, members); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to save members", err)
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return model.Team{}, ErrInternal("failed to reload team", err)
	}
	return team, nil
}

// RemoveMember убирает одного участника из команды — точечное удаление
// по аватару, без пересылки всего списка. Последнего участника убрать
// нельзя: действует тот же инвариант, что и у SaveMembers.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, username string) (model.Team, error) {
	if teamID == "" {
		return model.Team{}, ErrBadRequest("team_id is required")
	}
	if username == "" {
		return model.Team{}, ErrBadRequest("username is required")
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to get team", err)
	}
	if len(team.Members) <= 1 {
		return model.Team{}, ErrBadRequest("cannot remove the last team member")
	}

	if err := s.repo.RemoveMember(ctx, teamID, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Team{}, ErrNotFound("user is not a team member")
		}
		return model.Team{}, ErrInternal("failed to remove member", err)
	}

	team, err = s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return model.Team{}, ErrInternal("failed to reload team", err)
	}
	return team, nil
}
