package service

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrDuplicateLine   = errors.New("duplicate product line")
	ErrNoShiftSelected = errors.New("no shift selected")
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRange    = errors.New("invalid date range")
)
