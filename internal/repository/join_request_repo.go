package repository

import (
	"context"
	"fmt"

	"team-membership-service/internal/model"
)

// JoinRequestRepo реализует репозиторий заявок на вступление на базе PostgreSQL.
type JoinRequestRepo struct {
	db *Postgres
}

// NewJoinRequestRepo создаёт новый экземпляр JoinRequestRepo.
func NewJoinRequestRepo(db *Postgres) *JoinRequestRepo {
	return &JoinRequestRepo{db: db}
}

// ListByTeam возвращает ожидающие заявки команды в порядке их подачи.
func (r *JoinRequestRepo) ListByTeam(ctx context.Context, teamID string) ([]model.JoinRequest, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT jr.username, COALESCE(u.picture_url, ''), jr.created_at
FROM join_requests jr
LEFT JOIN users u ON u.username = jr.username
WHERE jr.team_id = $1
ORDER BY jr.created_at, jr.username
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query join requests: %w", err)
	}
	defer rows.Close()

	requests := make([]model.JoinRequest, 0)
	for rows.Next() {
		var jr model.JoinRequest
		if err := rows.Scan(&jr.Username, &jr.PictureURL, &jr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan join request: %w", err)
		}
		requests = append(requests, jr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return requests, nil
}

// Create регистрирует заявку пользователя на вступление в команду.
// Неизвестный юзернейм заводится в справочнике с ролью MEMBER.
// Повторная заявка того же пользователя не создаёт дубликата.
func (r *JoinRequestRepo) Create(ctx context.Context, teamID, username string) error {
	q := r.db.GetQueryExecutor(ctx)

	_, err := q.Exec(ctx, `
INSERT INTO users (username, role)
VALUES ($1, $2)
ON CONFLICT (username) DO NOTHING
`, username, string(model.RoleMember))
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	_, err = q.Exec(ctx, `
INSERT INTO join_requests (team_id, username)
VALUES ($1, $2)
ON CONFLICT (team_id, username) DO NOTHING
`, teamID, username)
	if err != nil {
		return fmt.Errorf("insert join request: %w", err)
	}
	return nil
}

// Delete удаляет заявку пользователя. Участвует в объемлющей транзакции,
// если она есть в контексте. Если заявки нет, возвращает ErrRequestNotFound.
func (r *JoinRequestRepo) Delete(ctx context.Context, teamID, username string) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
DELETE FROM join_requests
WHERE team_id = $1 AND username = $2
`, teamID, username)
	if err != nil {
		return fmt.Errorf("delete join request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
