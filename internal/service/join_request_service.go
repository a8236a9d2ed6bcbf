// Package service содержит бизнес-логику управления составом команд,
// заявками на вступление и метаданными проектов.
package service

import (
	"context"
	"errors"

	"team-membership-service/internal/model"
	"team-membership-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// JoinRequestRepository описывает контракт репозитория заявок для бизнес-слоя.
type JoinRequestRepository interface {
	ListByTeam(ctx context.Context, teamID string) ([]model.JoinRequest, error)
	Create(ctx context.Context, teamID, username string) error
	Delete(ctx context.Context, teamID, username string) error
}

// JoinRequestService инкапсулирует обработку заявок на вступление:
// список ожидающих заявок и переход accept/reject.
type JoinRequestService struct {
	requestRepo JoinRequestRepository
	teamRepo    TeamRepository
	userRepo    UserRepository
	txManager   TransactionManager
	inflight    *inflightRegistry
}

// NewJoinRequestService создаёт новый сервис для работы с заявками.
func NewJoinRequestService(requestRepo JoinRequestRepository, teamRepo TeamRepository, userRepo UserRepository, txManager TransactionManager) *JoinRequestService {
	return &JoinRequestService{
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		inflight:    newInflightRegistry(),
	}
}

// List возвращает ожидающие заявки команды. Пустой список — валидный
// результат и сериализуется как [], а не null.
func (s *JoinRequestService) List(ctx context.Context, teamID string) ([]model.JoinRequest, error) {
	if teamID == "" {
		return nil, ErrBadRequest("team_id is required")
	}
	requests, err := s.requestRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, ErrInternal("failed to list join requests", err)
	}
	return requests, nil
}

// Apply регистрирует заявку пользователя на вступление в команду.
func (s *JoinRequestService) Apply(ctx context.Context, teamID, username string) error {
	if teamID == "" {
		return ErrBadRequest("team_id is required")
	}
	if username == "" {
		return ErrBadRequest("username is required")
	}
	if err := s.requestRepo.Create(ctx, teamID, username); err != nil {
		return ErrInternal("failed to create join request", err)
	}
	return nil
}

// Respond обрабатывает решение по заявке. Accept добавляет пользователя
// в команду с ролью MEMBER и удаляет заявку в одной транзакции; reject
// только удаляет заявку. Состояние меняется лишь после фиксации — никакого
// оптимистичного удаления до подтверждения хранилищем.
//
// Повторный Respond по той же паре (команда, пользователь), пришедший пока
// первый ещё выполняется, получает CONFLICT вместо дублирующего эффекта.
func (s *JoinRequestService) Respond(ctx context.Context, teamID, username string, action model.JoinAction) error {
	if teamID == "" {
		return ErrBadRequest("team_id is required")
	}
	if username == "" {
		return ErrBadRequest("username is required")
	}
	if !action.Valid() {
		return ErrBadRequest("action must be accept or reject")
	}

	key := teamID + "/" + username
	if !s.inflight.TryAcquire(key) {
		return ErrConflict("REQUEST_IN_FLIGHT", "join request is already being processed")
	}
	defer s.inflight.Release(key)

	var err error
	if action == model.ActionAccept {
		// Перед зачислением убеждаемся, что профиль пользователя существует:
		// заявка могла пережить удаление учётной записи.
		if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrNotFound("user not found")
			}
			return ErrInternal("failed to get user", err)
		}
		err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := s.teamRepo.AddMember(ctx, teamID, username, model.RoleMember); err != nil {
				return err
			}
			return s.requestRepo.Delete(ctx, teamID, username)
		})
	} else {
		err = s.requestRepo.Delete(ctx, teamID, username)
	}

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return ErrNotFound("join request not found")
		case errors.Is(err, repository.ErrAlreadyMember):
			return ErrConflict("ALREADY_MEMBER", "user is already a team member")
		case errors.Is(err, repository.ErrTeamNotFound):
			return ErrNotFound("team not found")
		}
		return ErrInternal("failed to process join request", err)
	}
	return nil
}
