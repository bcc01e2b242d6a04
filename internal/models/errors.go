package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrGenerationFailed = errors.New("content generation failed")
	ErrWrongContentType = errors.New("wrong content type")
)
