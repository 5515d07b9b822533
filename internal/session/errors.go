package session

import "errors"

var (
	// ErrStorage возвращается при ошибках чтения или записи хранилища
	ErrStorage = errors.New("session: storage error")

	// ErrInvalidSession возвращается при попытке сохранить некорректную сессию
	ErrInvalidSession = errors.New("session: invalid session record")
)
