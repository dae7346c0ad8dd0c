package domain

import "errors"

var (
	ErrEmptyContent = errors.New("content required")
	ErrEmptyProject = errors.New("project required")
)
