package adapter

import "errors"

var (
	ErrInvalidEndpoint = errors.New("invalid dragonchain endpoint")
	ErrInvalidRequest  = errors.New("invalid dispatch request")
	ErrTransport       = errors.New("request could not be delivered")
)
