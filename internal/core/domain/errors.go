package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrMissingTitle         = errors.New("missing task title")
	ErrUnresolvedDueDate    = errors.New("unresolved due date phrase")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
