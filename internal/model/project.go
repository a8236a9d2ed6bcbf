package model

// ProjectStatus представляет статус проекта в его жизненном цикле.
type ProjectStatus string

const (
	// StatusDraft — черновик, виден только менеджерам.
	StatusDraft ProjectStatus = "DRAFT"
	// StatusPublished — опубликованный проект.
	StatusPublished ProjectStatus = "PUBLISHED"
	// StatusArchived — архивный проект, закрытый для изменений.
	StatusArchived ProjectStatus = "ARCHIVED"
)

// Valid сообщает, является ли статус одним из допустимых значений.
func (s ProjectStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// ProjectPriority представляет приоритет проекта.
type ProjectPriority string

const (
	PriorityLow    ProjectPriority = "LOW"
	PriorityMedium ProjectPriority = "MEDIUM"
	PriorityHigh   ProjectPriority = "HIGH"
	PriorityUrgent ProjectPriority = "URGENT"
)

// Valid сообщает, является ли приоритет одним из допустимых значений.
func (p ProjectPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ProjectInfo описывает локализованные текстовые поля проекта для одной локали.
type ProjectInfo struct {
	Locale           string `json:"locale"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
	Instructions     string `json:"instructions,omitempty"`
}

// Project описывает редактируемые метаданные проекта: статус, приоритет
// и локализованные описания. Локаль по умолчанию обязана иметь имя.
type Project struct {
	ProjectID     string          `json:"project_id"`
	Status        ProjectStatus   `json:"status"`
	Priority      ProjectPriority `json:"priority"`
	DefaultLocale string          `json:"default_locale"`
	Info          []ProjectInfo   `json:"project_info"`
}
