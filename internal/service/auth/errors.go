package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = errors.New("email already in use")

	// ErrWeakPassword возвращается, когда пароль короче минимальной длины
	ErrWeakPassword = errors.New("password too weak")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Не различаем "нет пользователя" и "неверный пароль".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
