package cinder

import (
	"errors"
)

var (
	ErrInvalidMaxSize       = errors.New("max size must be at least 1")
	ErrInvalidTTL           = errors.New("default ttl must be a positive duration")
	ErrInvalidCheckInterval = errors.New("check interval must be a positive duration")
	ErrInvalidConcurrency   = errors.New("warmup concurrency must be at least 1")
	ErrNilFactory           = errors.New("factory must not be nil")
	ErrNilLoader            = errors.New("loader must not be nil")
)
