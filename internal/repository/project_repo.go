package repository

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProjectRepo реализует репозиторий метаданных проектов на базе PostgreSQL.
type ProjectRepo struct {
	db *Postgres
}

// NewProjectRepo создаёт новый экземпляр ProjectRepo.
func NewProjectRepo(db *Postgres) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// GetByID возвращает проект с его локализованными описаниями.
// Если проект не найден, возвращает ErrProjectNotFound.
func (r *ProjectRepo) GetByID(ctx context.Context, projectID string) (model.Project, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT project_id, status, priority, default_locale
FROM projects
WHERE project_id = $1
`, projectID)

	var p model.Project
	if err := row.Scan(&p.ProjectID, &p.Status, &p.Priority, &p.DefaultLocale); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
SELECT locale, name, COALESCE(short_description, ''), COALESCE(description, ''), COALESCE(instructions, '')
FROM project_info
WHERE project_id = $1
ORDER BY locale
`, projectID)
	if err != nil {
		return model.Project{}, fmt.Errorf("query project info: %w", err)
	}
	defer rows.Close()

	p.Info = make([]model.ProjectInfo, 0)
	for rows.Next() {
		var info model.ProjectInfo
		if err := rows.Scan(&info.Locale, &info.Name, &info.ShortDescription, &info.Description, &info.Instructions); err != nil {
			return model.Project{}, fmt.Errorf("scan project info: %w", err)
		}
		p.Info = append(p.Info, info)
	}
	if err := rows.Err(); err != nil {
		return model.Project{}, fmt.Errorf("rows error: %w", err)
	}

	return p, nil
}

// UpdateMetadata сохраняет статус, приоритет и локализованные описания
// проекта в одной транзакции. Описания обновляются по (project_id, locale).
func (r *ProjectRepo) UpdateMetadata(ctx context.Context, p model.Project) (model.Project, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return model.Project{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
UPDATE projects
SET status = $2, priority = $3, default_locale = $4
WHERE project_id = $1
`, p.ProjectID, string(p.Status), string(p.Priority), p.DefaultLocale)
	if err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrProjectNotFound
		return model.Project{}, err
	}

	for _, info := range p.Info {
		_, err = tx.Exec(ctx, `
INSERT INTO project_info (project_id, locale, name, short_description, description, instructions)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (project_id, locale) DO UPDATE
SET name = EXCLUDED.name,
    short_description = EXCLUDED.short_description,
    description = EXCLUDED.description,
    instructions = EXCLUDED.instructions
`, p.ProjectID, info.Locale, info.Name, info.ShortDescription, info.Description, info.Instructions)
		if err != nil {
			err = fmt.Errorf("upsert project info %s: %w", info.Locale, err)
			return model.Project{}, err
		}
	}

	return p, nil
}
