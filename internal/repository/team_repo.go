package repository

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo реализует репозиторий команд и их участников на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// CreateTeam создаёт команду вместе с начальным составом. Пользователи,
// которых ещё нет в справочнике, заводятся с ролью MEMBER.
// При дубликате team_id возвращает ErrTeamExists.
func (r *TeamRepo) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return model.Team{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO teams (team_id, team_name) VALUES ($1, $2)`, t.TeamID, t.TeamName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальное ограничение по team_id нарушено
			err = ErrTeamExists
			return model.Team{}, err
		}
		err = fmt.Errorf("insert team: %w", err)
		return model.Team{}, err
	}

	for i, m := range t.Members {
		_, err = tx.Exec(ctx, `
INSERT INTO users (username, picture_url, role)
VALUES ($1, NULLIF($2, ''), $3)
ON CONFLICT (username) DO NOTHING
`, m.Username, m.PictureURL, string(model.RoleMember))
		if err != nil {
			err = fmt.Errorf("upsert user %s: %w", m.Username, err)
			return model.Team{}, err
		}

		_, err = tx.Exec(ctx, `
INSERT INTO team_members (team_id, username, role, position)
VALUES ($1, $2, $3, $4)
`, t.TeamID, m.Username, string(m.Role), i+1)
		if err != nil {
			err = fmt.Errorf("insert member %s: %w", m.Username, err)
			return model.Team{}, err
		}
	}

	return t, nil
}

// GetTeamByID возвращает команду с упорядоченным списком участников.
// Если команда не найдена, возвращает ErrTeamNotFound.
func (r *TeamRepo) GetTeamByID(ctx context.Context, teamID string) (model.Team, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.team_id, t.team_name, m.username, u.picture_url, m.role
FROM teams t
LEFT JOIN team_members m ON m.team_id = t.team_id
LEFT JOIN users u ON u.username = m.username
WHERE t.team_id = $1
ORDER BY m.position
`, teamID)
	if err != nil {
		return model.Team{}, fmt.Errorf("query team: %w", err)
	}
	defer rows.Close()

	team := model.Team{
		TeamID:  teamID,
		Members: make([]model.TeamMember, 0),
	}

	foundTeam := false

	for rows.Next() {
		foundTeam = true

		var teamName string
		var username *string
		var pictureURL *string
		var role *string

		if err := rows.Scan(&team.TeamID, &teamName, &username, &pictureURL, &role); err != nil {
			return model.Team{}, fmt.Errorf("scan row: %w", err)
		}

		team.TeamName = teamName

		// LEFT JOIN даёт строку с NULL-участником для пустой команды
		if username != nil && role != nil {
			m := model.TeamMember{
				Username: *username,
				Role:     model.Role(*role),
			}
			if pictureURL != nil {
				m.PictureURL = *pictureURL
			}
			team.Members = append(team.Members, m)
		}
	}

	if err := rows.Err(); err != nil {
		return model.Team{}, fmt.Errorf("rows error: %w", err)
	}

	if !foundTeam {
		return model.Team{}, ErrTeamNotFound
	}

	return team, nil
}

// AddMember добавляет пользователя в конец списка участников команды.
// Участвует в объемлющей транзакции, если она есть в контексте.
// Если пользователь уже в команде, возвращает ErrAlreadyMember.
func (r *TeamRepo) AddMember(ctx context.Context, teamID, username string, role model.Role) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
INSERT INTO team_members (team_id, username, role, position)
SELECT $1, $2, $3, COALESCE(MAX(position), 0) + 1
FROM team_members
WHERE team_id = $1
ON CONFLICT (team_id, username) DO NOTHING
`, teamID, username, string(role))
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyMember
	}
	return nil
}

// ReplaceMembers целиком заменяет список участников команды на переданный,
// сохраняя порядок. Выполняется в одной транзакции.
func (r *TeamRepo) ReplaceMembers(ctx context.Context, teamID string, members []model.TeamMember) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE team_id = $1)`, teamID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check team: %w", err)
	}
	if !exists {
		err = ErrTeamNotFound
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("clear members: %w", err)
	}

	for i, m := range members {
		_, err = tx.Exec(ctx, `
INSERT INTO team_members (team_id, username, role, position)
VALUES ($1, $2, $3, $4)
`, teamID, m.Username, string(m.Role), i+1)
		if err != nil {
			err = fmt.Errorf("insert member %s: %w", m.Username, err)
			return err
		}
	}

	return nil
}

// RemoveMember удаляет пользователя из команды.
// Если такого участника нет, возвращает ErrUserNotFound.
func (r *TeamRepo) RemoveMember(ctx context.Context, teamID, username string) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
DELETE FROM team_members
WHERE team_id = $1 AND username = $2
`, teamID, username)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
