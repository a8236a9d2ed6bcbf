package service

import "sync"

// inflightRegistry отслеживает выполняющиеся операции по строковому ключу.
// Повторный запуск операции с тем же ключом отклоняется, пока первая
// не завершилась: защита от двойного клика по accept/reject.
type inflightRegistry struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{keys: make(map[string]struct{})}
}

// TryAcquire захватывает ключ. Возвращает false, если операция
// с этим ключом уже выполняется.
func (r *inflightRegistry) TryAcquire(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.keys[key]; busy {
		return false
	}
	r.keys[key] = struct{}{}
	return true
}

// Release освобождает ключ после завершения операции.
func (r *inflightRegistry) Release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keys, key)
}
