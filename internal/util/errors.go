package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrModelNotFound      = errors.New("model not found")
	ErrEmptyQuestions     = errors.New("questions array cannot be empty")
)
