package session

import (
	"sync"
	"time"

	"github.com/explorio/booking-service/internal/domain"
)

// Store хранилище сессий мастера бронирования в памяти
// Сессии живут только в памяти процесса и теряются при его завершении
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewStore создает новое хранилище сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
		now:      time.Now,
	}
}

// Create сохраняет новую сессию
func (s *Store) Create(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get возвращает копию сессии по id
// Копия отвязана от хранимого состояния: мутации выполняются только
// через Update, поэтому читатели не видят промежуточных изменений
func (s *Store) Get(id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// Update выполняет мутацию сессии под блокировкой хранилища
// Каждое действие пользователя читает текущее состояние, вычисляет
// следующее и замещает его атомарно: два конкурентных действия над
// одной сессией не перемежаются
func (s *Store) Update(id string, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = s.now()
	return cloneSession(session), nil
}

// Delete удаляет сессию (уход с экрана мастера)
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// cloneSession возвращает копию сессии с собственной картой количеств add-on'ов
func cloneSession(session *domain.Session) *domain.Session {
	clone := *session

	quantities := make(map[string]int, len(session.Selection.AddOnQuantities))
	for id, qty := range session.Selection.AddOnQuantities {
		quantities[id] = qty
	}
	clone.Selection.AddOnQuantities = quantities

	if session.Record != nil {
		record := *session.Record
		clone.Record = &record
	}

	return &clone
}
