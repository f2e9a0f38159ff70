package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyClosed = errors.New("session already closed")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUnsupportedSubject   = errors.New("unsupported subject")
	ErrTopicRequired        = errors.New("topic is required")
	ErrNegativeCounters     = errors.New("session counters must not be negative")
)
