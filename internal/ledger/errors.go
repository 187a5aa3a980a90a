package ledger

import (
	"errors"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

// Errors shared with the models package so that callers only need to check
// against ledger errors.
var (
	ErrInvalidAmount          = models.ErrInvalidAmount
	ErrInsufficientFunds      = models.ErrInsufficientFunds
	ErrConcurrentModification = models.ErrConcurrentModification
)

var (
	ErrInvalidSource        = errors.New("the earning source must be one of task_completion, bonus or manual")
	ErrSplitMismatch        = errors.New("goal, cash and investment must add up to the allocatable amount")
	ErrNothingToAllocate    = errors.New("there is no money to allocate right now")
	ErrInsufficientEarnings = errors.New("the requested amount exceeds the pending earnings of the month")
	ErrDailyLimitReached    = errors.New("the task has already been completed as often as allowed today")
	ErrTaskArchived         = errors.New("the task is archived and cannot be completed")
	ErrTaskNotAssigned      = errors.New("the task is assigned to a different member")
	ErrGoalInactive         = errors.New("the goal is not active")
	ErrGoalFull             = errors.New("the goal has already reached its target")
	ErrGoalNotCompletable   = errors.New("the goal has not reached its target yet")
	ErrFutureDate           = errors.New("the date must not be in the future")
	ErrNegativeCount        = errors.New("the number of completions must not be negative")
)
