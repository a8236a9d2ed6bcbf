package client

import (
	"context"
	"sync"
	"time"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
)

// SearchResult — итог одного поискового запроса.
type SearchResult struct {
	Query string
	Users []model.User
	Err   error
}

// UserSearcher — дебаунсер поиска по справочнику для наполнения
// выпадающего списка. Каждый новый ввод сбрасывает отложенный таймер,
// а запрос, вытесненный более свежим вводом, отменяется через контекст:
// перекрывающиеся запросы не гоняются между собой за канал результатов.
type UserSearcher struct {
	client *Client
	filter service.RoleFilter
	delay  time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc

	results chan SearchResult
}

// NewUserSearcher создаёт дебаунсер с заданной задержкой после последнего ввода.
func NewUserSearcher(c *Client, filter service.RoleFilter, delay time.Duration) *UserSearcher {
	return &UserSearcher{
		client:  c,
		filter:  filter,
		delay:   delay,
		results: make(chan SearchResult, 1),
	}
}

// Query планирует поиск по q, отменяя ещё не выстреливший предыдущий таймер.
func (s *UserSearcher) Query(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.run(q) })
}

// Results отдаёт канал с результатами. В канале лежит не более одного,
// самого свежего результата: устаревший вытесняется.
func (s *UserSearcher) Results() <-chan SearchResult {
	return s.results
}

// Close останавливает отложенный таймер и отменяет запрос в полёте.
func (s *UserSearcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *UserSearcher) run(q string) {
	s.mu.Lock()
	if s.cancel != nil {
		// запрос под более старый ввод больше никому не нужен
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	users, err := s.client.SearchUsers(ctx, q, s.filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		// нас вытеснил более свежий запрос
		return
	}

	select {
	case <-s.results:
	default:
	}
	s.results <- SearchResult{Query: q, Users: users, Err: err}
}
