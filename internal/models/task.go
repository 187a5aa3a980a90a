package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a chore that earns its reward each time it is completed.
type Task struct {
	DefaultModel
	Family     Family     `json:"-"`
	FamilyID   uuid.UUID  `json:"familyId" gorm:"type:uuid;uniqueIndex:task_family_name"`
	MemberID   *uuid.UUID `json:"memberId" gorm:"type:uuid"` // Only this member may complete the task. Nil means everyone.
	Name       string     `json:"name" gorm:"uniqueIndex:task_family_name" example:"Feed the cat"`
	Icon       string     `json:"icon" example:"🐱"`
	Reward     int64      `json:"reward" gorm:"check:task_reward_positive,reward > 0" example:"50"`
	DailyLimit int        `json:"dailyLimit" gorm:"check:task_daily_limit_positive,daily_limit >= 1" example:"1"`
	Archived   bool       `json:"archived" example:"false"`
}

func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.Name = normalizeName(t.Name)
	if t.DailyLimit == 0 {
		t.DailyLimit = 1
	}

	return nil
}

// AssignedTo reports if the member may complete the task.
func (t Task) AssignedTo(memberID uuid.UUID) bool {
	return t.MemberID == nil || *t.MemberID == memberID
}

// TaskCompletion is one completion of a task. The reward is copied from the
// task when it is completed and never re-read.
type TaskCompletion struct {
	DefaultModel
	MemberScope
	Task        Task      `json:"-"`
	TaskID      uuid.UUID `json:"taskId" gorm:"type:uuid;index"`
	CompletedAt time.Time `json:"completedAt" gorm:"index" example:"2025-08-03T07:30:00Z"`
	Reward      int64     `json:"reward" example:"50"`
}

func (c *TaskCompletion) AfterFind(tx *gorm.DB) error {
	c.CompletedAt = c.CompletedAt.In(time.UTC)
	return c.DefaultModel.AfterFind(tx)
}
