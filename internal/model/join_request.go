package model

import "time"

// JoinAction представляет решение по заявке на вступление.
type JoinAction string

const (
	// ActionAccept означает принятие заявки: пользователь становится участником.
	ActionAccept JoinAction = "accept"
	// ActionReject означает отклонение заявки без изменения состава команды.
	ActionReject JoinAction = "reject"
)

// Valid сообщает, является ли действие одним из допустимых значений.
func (a JoinAction) Valid() bool {
	return a == ActionAccept || a == ActionReject
}

// JoinRequest описывает ожидающую заявку пользователя на вступление в команду.
// Форма совпадает с User; намерение вступить выражено самим фактом записи.
type JoinRequest struct {
	Username   string     `json:"username"`
	PictureURL string     `json:"picture_url,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
