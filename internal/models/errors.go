package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrMemberNameNotUnique    = errors.New("the member name must be unique within the family")
	ErrTaskNameNotUnique      = errors.New("the task name must be unique within the family")
	ErrInvalidRole            = errors.New("the role must be parent or child")
	ErrAmountNotPositive      = errors.New("amounts must be larger than zero")
	ErrDailyLimitNotPositive  = errors.New("the daily limit of a task must be at least 1")
	ErrInvalidAmount          = errors.New("the amount must be larger than zero")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrConcurrentModification = errors.New("the balance was modified concurrently, please retry")
)
