package polls

import "errors"

var ErrOptionNotFound = errors.New("polls: option not found")
