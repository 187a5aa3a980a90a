package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompleteTask records a completion of the task by the member and the
// earning for it.
func (s *Service) CompleteTask(ctx context.Context, scope Scope, taskID uuid.UUID) (models.TaskCompletion, error) {
	var completion models.TaskCompletion
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		task, err := loadTask(tx, scope, taskID)
		if err != nil {
			return nil, err
		}

		if task.Archived {
			return nil, ErrTaskArchived
		}

		if !task.AssignedTo(scope.MemberID) {
			return nil, ErrTaskNotAssigned
		}

		today := s.Today()
		done, err := s.completionsOn(tx, scope, &task.ID, today)
		if err != nil {
			return nil, err
		}

		if len(done) >= task.DailyLimit {
			return nil, ErrDailyLimitReached
		}

		completion, err = createCompletion(tx, scope, task, s.now().UTC(), today)
		if err != nil {
			return nil, err
		}

		return []Event{{Kind: EventTaskCompleted, ResourceID: &completion.ID, Amount: completion.Reward}}, nil
	})

	return completion, err
}

func loadTask(tx *gorm.DB, scope Scope, id uuid.UUID) (models.Task, error) {
	var task models.Task
	err := tx.Where("id = ? AND family_id = ?", id, scope.FamilyID).First(&task).Error
	return task, err
}

// createCompletion stores the completion and the earning for it. The earning
// is dated on the day the task was done for.
func createCompletion(tx *gorm.DB, scope Scope, task models.Task, at time.Time, day types.Date) (models.TaskCompletion, error) {
	completion := models.TaskCompletion{
		MemberScope: scope,
		TaskID:      task.ID,
		CompletedAt: at,
		Reward:      task.Reward,
	}

	if err := tx.Create(&completion).Error; err != nil {
		return models.TaskCompletion{}, err
	}

	_, err := recordEarning(tx, scope, completion.Reward, models.SourceTaskCompletion, &completion.ID, day)
	if err != nil {
		return models.TaskCompletion{}, err
	}

	return completion, nil
}

// CompletionsOn returns the completions of the member on day, oldest first.
func (s *Service) CompletionsOn(ctx context.Context, scope Scope, day types.Date) ([]models.TaskCompletion, error) {
	var completions []models.TaskCompletion
	err := s.read(ctx, func(db *gorm.DB) error {
		var err error
		completions, err = s.completionsOn(db, scope, nil, day)
		return err
	})
	if err != nil {
		logReadFailure(scope, "completions", err)
		return nil, err
	}

	return completions, nil
}

// completionsOn returns the completions on the local calendar day, optionally
// of one task only.
func (s *Service) completionsOn(tx *gorm.DB, scope Scope, taskID *uuid.UUID, day types.Date) ([]models.TaskCompletion, error) {
	start := day.Time(s.loc).UTC()
	end := day.AddDays(1).Time(s.loc).UTC()

	q := scoped(tx, scope).
		Where("completed_at >= ? AND completed_at < ?", start, end).
		Order("completed_at ASC")

	if taskID != nil {
		q = q.Where("task_id = ?", *taskID)
	}

	var completions []models.TaskCompletion
	err := q.Find(&completions).Error
	return completions, err
}

// RemoveCompletion deletes a completion and drops the pending earning it
// produced. Money that was already allocated stays allocated.
func (s *Service) RemoveCompletion(ctx context.Context, scope Scope, completionID uuid.UUID) error {
	return s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		var completion models.TaskCompletion
		if err := scoped(tx, scope).Where("id = ?", completionID).First(&completion).Error; err != nil {
			return nil, err
		}

		if err := removeCompletion(tx, scope, completion, s.now().UTC()); err != nil {
			return nil, err
		}

		return []Event{{Kind: EventTaskCompletionRemoved, ResourceID: &completion.ID, Amount: -completion.Reward}}, nil
	})
}

func removeCompletion(tx *gorm.DB, scope Scope, completion models.TaskCompletion, at time.Time) error {
	var earnings []models.EarningRecord
	err := scoped(tx, scope).
		Where("source = ? AND source_id = ?", models.SourceTaskCompletion, completion.ID).
		Find(&earnings).Error
	if err != nil {
		return err
	}

	for i := range earnings {
		e := &earnings[i]
		if e.Status != models.EarningPending {
			log.Warn().
				Str("family", scope.FamilyID.String()).
				Str("member", scope.MemberID.String()).
				Str("completion", completion.ID.String()).
				Str("status", string(e.Status)).
				Msg("removed completion whose earning is no longer pending")
			continue
		}

		if e.PendingAmount < e.Amount {
			log.Warn().
				Str("family", scope.FamilyID.String()).
				Str("member", scope.MemberID.String()).
				Str("completion", completion.ID.String()).
				Int64("allocated", e.Amount-e.PendingAmount).
				Msg("removed completion whose earning was partially allocated")
		}

		e.Expire(at)
		if err := tx.Save(e).Error; err != nil {
			return err
		}
	}

	return tx.Delete(&completion).Error
}

// AdjustCompletions sets the number of completions of a task by the member on
// day to count. Missing completions are added at noon, one minute apart, and
// surplus completions are removed newest first. The daily limit does not
// apply.
func (s *Service) AdjustCompletions(ctx context.Context, scope Scope, taskID uuid.UUID, day types.Date, count int) (int, error) {
	if count < 0 {
		return 0, ErrNegativeCount
	}

	if day.After(s.Today()) {
		return 0, ErrFutureDate
	}

	var result int
	err := s.write(ctx, scope, func(tx *gorm.DB) ([]Event, error) {
		task, err := loadTask(tx, scope, taskID)
		if err != nil {
			return nil, err
		}

		existing, err := s.completionsOn(tx, scope, &task.ID, day)
		if err != nil {
			return nil, err
		}

		noon := day.Time(s.loc).Add(12 * time.Hour)
		for i := len(existing); i < count; i++ {
			at := noon.Add(time.Duration(i) * time.Minute).UTC()
			if _, err := createCompletion(tx, scope, task, at, day); err != nil {
				return nil, err
			}
		}

		for i := len(existing) - 1; i >= count; i-- {
			if err := removeCompletion(tx, scope, existing[i], s.now().UTC()); err != nil {
				return nil, err
			}
		}

		result = count
		return []Event{{Kind: EventCompletionsUpdated, ResourceID: &task.ID, Amount: int64(count - len(existing))}}, nil
	})

	return result, err
}
