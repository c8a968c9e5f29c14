package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrValidation   = errors.New("validation")   // 400
	ErrNotFound     = errors.New("not found")    // 404
	ErrUnauthorized = errors.New("unauthorized") // 401
)

func validID(id string) bool {
	return uuid.Validate(id) == nil
}
