package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в справочнике.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать дубликат команды.
	ErrTeamExists = errors.New("team already exists")

	// ErrRequestNotFound возвращается, если у команды нет заявки от данного пользователя.
	ErrRequestNotFound = errors.New("join request not found")

	// ErrProjectNotFound возвращается, если проект не найден.
	ErrProjectNotFound = errors.New("project not found")

	// ErrAlreadyMember возвращается при попытке добавить пользователя,
	// который уже состоит в команде.
	ErrAlreadyMember = errors.New("user is already a team member")
)
