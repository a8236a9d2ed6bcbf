package model

import "encoding/json"

// TeamMember описывает участника команды с его аватаром и ролью.
type TeamMember struct {
	Username   string `json:"username"`
	PictureURL string `json:"picture_url,omitempty"`
	Role       Role   `json:"role"`
}

// IsManager сообщает, является ли участник менеджером (ADMIN или PROJECT_MANAGER).
func (m TeamMember) IsManager() bool {
	return m.Role == RoleAdmin || m.Role == RoleProjectManager
}

// MarshalJSON дополняет участника проекцией is_manager: фронтенд различает
// менеджерские аватары, не зная перечня менеджерских ролей.
func (m TeamMember) MarshalJSON() ([]byte, error) {
	type alias TeamMember
	return json.Marshal(struct {
		alias
		IsManager bool `json:"is_manager"`
	}{alias(m), m.IsManager()})
}

// Team описывает команду и упорядоченный список её участников.
type Team struct {
	TeamID   string       `json:"team_id"`
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}
