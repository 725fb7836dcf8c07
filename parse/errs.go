package parse

import (
	"errors"
)

var errInternal = errors.New("internal parse error")
