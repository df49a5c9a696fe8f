package domain

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown account kind")
	ErrUnknownCategory = errors.New("unknown customer category")
)
