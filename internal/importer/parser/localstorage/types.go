package localstorage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// amount is a legacy money value. The legacy store wrote numbers, but values
// edited by hand are sometimes quoted.
type amount int64

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%s is not an amount", data)
	}

	*a = amount(math.Round(f))
	return nil
}

type balance struct {
	Available amount `json:"available"`
	Allocated amount `json:"allocated"`
	Spent     amount `json:"spent"`
	Total     amount `json:"total"`
}

type earning struct {
	ID          string     `json:"id"`
	Amount      amount     `json:"amount"`
	EarnedDate  string     `json:"earnedDate"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	AllocatedAt *time.Time `json:"allocatedAt"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type goal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Title         string     `json:"title"`
	Icon          string     `json:"icon"`
	TargetAmount  amount     `json:"targetAmount"`
	CurrentAmount amount     `json:"currentAmount"`
	IsActive      *bool      `json:"isActive"`
	IsCompleted   bool       `json:"isCompleted"`
	Status        string     `json:"status"` // active, achieved or paused
	CompletedAt   *time.Time `json:"completedAt"`
	CreatedAt     *time.Time `json:"createdAt"`
}

type investment struct {
	ID           string     `json:"id"`
	Amount       amount     `json:"amount"`
	InvestedDate string     `json:"investedDate"`
	CreatedAt    *time.Time `json:"createdAt"`
}

func decode(snapshot map[string]string, key string, v any) (bool, error) {
	raw, ok := snapshot[key]
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, key, err)
	}

	return true, nil
}
