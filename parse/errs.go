package parse

import "errors"

// ErrParse is the sentinel for all syntax errors.
var ErrParse = errors.New("parse error")
