package cfg

import "errors"

var (
	// ErrParse reports malformed input text on load.
	ErrParse = errors.New("parse error")
	// ErrFileNotExists reports a missing load target.
	ErrFileNotExists = errors.New("file not exists")
	// ErrSave reports a failed serialization or write.
	ErrSave = errors.New("save error")
	// ErrElementNotExists reports an operation on an unbound view.
	ErrElementNotExists = errors.New("element not exists")
	// ErrDelete reports a removal that could not be performed.
	ErrDelete = errors.New("delete error")
)
