package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// Ключи слотов хранилища
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Observer получает новую сессию после каждого Set/Clear (nil после Clear)
type Observer func(s *domain.Session)

// Store контекст сессии текущего пользователя
// Единственный канал изменения - Set (логин) и Clear (логаут), наблюдатели уведомляются после записи
type Store struct {
	mu        sync.RWMutex
	storage   Storage
	logger    Logger
	observers map[int]Observer
	nextID    int
}

// NewStore создает новый экземпляр хранилища сессии
func NewStore(storage Storage, logger Logger) *Store {
	return &Store{
		storage:   storage,
		logger:    logger,
		observers: make(map[int]Observer),
	}
}

// Current возвращает сохраненную сессию или nil, если ее нет или запись повреждена
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok, err := s.storage.Get(KeyUser)
	if err != nil {
		s.logger.Warn("Session.Current: storage read failed, treating as absent: %v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var session *domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn("Session.Current: malformed session record, treating as absent: %v", err)
		return nil
	}
	// запись без id пользователя или токена не считается сессией
	if session != nil && (session.ID == 0 || session.Token == "") {
		s.logger.Warn("Session.Current: session record lacks id or token, treating as absent")
		return nil
	}
	return session
}

// IsAdmin returns true iff the current session contains the admin role marker
func (s *Store) IsAdmin() bool {
	return s.Current().IsAdmin()
}

// Token возвращает bearer токен из отдельного слота (пустая строка, если его нет)
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok, err := s.storage.Get(KeyToken)
	if err != nil {
		s.logger.Warn("Session.Token: storage read failed: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// Set перезаписывает сессию (оба слота) и уведомляет наблюдателей
func (s *Store) Set(session *domain.Session) error {
	if session == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrInvalidSession, err)
	}

	s.mu.Lock()
	if err := s.storage.Set(KeyToken, session.Token); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.storage.Set(KeyUser, string(data)); err != nil {
		s.mu.Unlock()
		return err
	}
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.logger.Info("Session.Set: session stored for user=%s id=%d", session.Username, session.ID)
	notify(observers, session)
	return nil
}

// Clear удаляет оба слота и уведомляет наблюдателей
func (s *Store) Clear() error {
	s.mu.Lock()
	if err := s.storage.Delete(KeyToken, KeyUser); err != nil {
		s.mu.Unlock()
		return err
	}
	observers := s.snapshotObservers()
	s.mu.Unlock()

	s.logger.Info("Session.Clear: session removed")
	notify(observers, nil)
	return nil
}

// Subscribe регистрирует наблюдателя и возвращает функцию отписки
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) snapshotObservers() []Observer {
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	return observers
}

func notify(observers []Observer, session *domain.Session) {
	for _, fn := range observers {
		fn(session)
	}
}
