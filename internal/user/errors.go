package user

import "errors"

var (
	ErrSetIDRequired  = errors.New("set id is required")
	ErrSetNotFound    = errors.New("set not found")
	ErrNotUserSet     = errors.New("set does not contain user records")
	ErrNoUserIDs      = errors.New("user id list is empty")
	ErrUserNotFound   = errors.New("user not found")
	ErrCatalogueFetch = errors.New("failed to fetch note type catalog")
)
