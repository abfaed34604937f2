package ir

import "errors"

var (
	ErrContainer     = errors.New("not a container")
	ErrDuplicateName = errors.New("duplicate name")
	ErrUnnamed       = errors.New("group child needs a name")
	ErrNamed         = errors.New("array/list child cannot have a name")
	ErrArrayElement  = errors.New("array elements must be same-typed scalars")
	ErrNoParent      = errors.New("no parent")
	ErrNotFound      = errors.New("not found")
)
