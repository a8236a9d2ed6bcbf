// Package model содержит доменные структуры для пользователей, команд, заявок и проектов
package model

// Role представляет роль пользователя на платформе.
type Role string

const (
	// RoleMember — обычный участник без расширенных прав.
	RoleMember Role = "MEMBER"
	// RoleAdmin — администратор платформы.
	RoleAdmin Role = "ADMIN"
	// RoleProjectManager — менеджер проектов.
	RoleProjectManager Role = "PROJECT_MANAGER"
)

// ManagerRoles — набор ролей, считающихся менеджерскими при поиске по справочнику.
var ManagerRoles = []Role{RoleAdmin, RoleProjectManager}

// User описывает пользователя справочника: юзернейм, аватар и роль.
type User struct {
	Username   string `json:"username"`
	PictureURL string `json:"picture_url,omitempty"`
	Role       Role   `json:"role"`
}
