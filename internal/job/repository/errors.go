package repository

import "errors"

var (
	ErrRunNotFound  = errors.New("run not found")
	ErrProgressMiss = errors.New("no progress snapshot")
)
