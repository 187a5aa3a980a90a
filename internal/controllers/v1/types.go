package v1

import (
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	fh_uuid "github.com/nsdayo12311231-cmyk/family-helper-app/internal/uuid"
)

// Controller serves the v1 API. The family, member and task resources are
// read from models.DB, everything that moves money goes through Ledger.
type Controller struct {
	Ledger *ledger.Service
}

// Response is the envelope of every v1 response.
type Response[T any] struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  T       `json:"data"`                                                          // The data of the response
}

type URIID struct {
	ID fh_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URITask struct {
	URIID
	TaskID fh_uuid.UUID `uri:"taskId" binding:"required" format:"UUID"` // ID of the task
}

type URICompletion struct {
	URIID
	CompletionID fh_uuid.UUID `uri:"completionId" binding:"required" format:"UUID"` // ID of the task completion
}

type URIGoal struct {
	URIID
	GoalID fh_uuid.UUID `uri:"goalId" binding:"required" format:"UUID"` // ID of the goal
}

type QueryDate struct {
	Date string `form:"date" example:"2025-08-03"` // Day in YYYY-MM-DD format, defaults to today
}

type QueryActive struct {
	Active bool `form:"active" example:"true"` // Only return active goals
}

// AmountEditable is the body of all operations that move an amount.
type AmountEditable struct {
	Amount int64 `json:"amount" example:"50"` // Amount of money
}

// CompletionsEditable sets the number of completions of a task on a day.
type CompletionsEditable struct {
	Date  types.Date `json:"date" example:"2025-08-03"` // Day of the completions
	Count int        `json:"count" example:"2"`         // Number of completions the task should have on that day
}

type CompletionsCount struct {
	Count int `json:"count" example:"2"` // Number of completions after the change
}
