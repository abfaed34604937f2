package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrInclude = fmt.Errorf("%w: include", ErrParse)
)
