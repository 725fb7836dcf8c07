package ir

import (
	"errors"
)

var (
	ErrPath = errors.New("path error")
	ErrJSON = errors.New("json error")
)
