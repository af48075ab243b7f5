// Хранилище состояний диалогов. Живёт только в памяти процесса:
// прерванный диалог просто начинается заново со своей команды
package session

import "sync"

// Метка текущего шага диалога
type Tag string

const None Tag = ""

// Состояние одного пользователя: метка шага и накопленные ответы
type Session struct {
	State Tag
	Data  map[string]string
}

type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Получение сессии пользователя с созданием новой при необходимости.
// Копия снимается под блокировкой, чтобы не гоняться с UpdateData
func (s *Store) Get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return Session{State: None, Data: map[string]string{}}
	}

	data := make(map[string]string, len(session.Data))
	for k, v := range session.Data {
		data[k] = v
	}

	return Session{State: session.State, Data: data}
}

func (s *Store) SetState(userID int64, tag Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(userID).State = tag
}

func (s *Store) State(userID int64) Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[userID]; ok {
		return session.State
	}

	return None
}

// Добавление частичных ответов к сессии. Метка шага не меняется
func (s *Store) UpdateData(userID int64, data map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.session(userID)
	for k, v := range data {
		session.Data[k] = v
	}
}

func (s *Store) GetData(userID int64) map[string]string {
	return s.Get(userID).Data
}

// Полный сброс диалога
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func (s *Store) session(userID int64) *Session {
	session, ok := s.sessions[userID]
	if !ok {
		session = &Session{State: None, Data: map[string]string{}}
		s.sessions[userID] = session
	}

	return session
}
