package ws

import "errors"

var (
	errNoManager     = errors.New("no room manager attached")
	errUnknownAction = errors.New("unknown action")
)
