package repository

import (
	"context"
	"errors"
	"fmt"

	"team-membership-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// searchLimit ограничивает размер выдачи поиска по справочнику:
// результат наполняет выпадающий список, длинный хвост там не нужен.
const searchLimit = 20

// UserRepo реализует репозиторий справочника пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// SearchByUsername возвращает пользователей, чей юзернейм начинается с prefix.
// Если roles непустой, выдача дополнительно фильтруется по набору ролей.
func (r *UserRepo) SearchByUsername(ctx context.Context, prefix string, roles []model.Role) ([]model.User, error) {
	query := `
SELECT username, COALESCE(picture_url, ''), role
FROM users
WHERE username ILIKE $1 || '%'
`
	args := []any{prefix}

	if len(roles) > 0 {
		query += `AND role = ANY($2)
`
		rr := make([]string, 0, len(roles))
		for _, role := range roles {
			rr = append(rr, string(role))
		}
		args = append(args, rr)
	}

	query += fmt.Sprintf("ORDER BY username\nLIMIT %d", searchLimit)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.PictureURL, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// GetByUsername возвращает пользователя по юзернейму.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT username, COALESCE(picture_url, ''), role
FROM users
WHERE username = $1
`, username)

	var u model.User
	if err := row.Scan(&u.Username, &u.PictureURL, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
