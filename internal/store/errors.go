package store

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidSheetType = errors.New("invalid sheet type")
	ErrUnknownCategory  = errors.New("unknown catalog category")
)
