// Package ledger keeps the money of family members: earnings from tasks, the
// monthly pending money derived from them, the money buckets, goals and
// investments.
//
// Every write for a member runs under that member's lock and inside one
// database transaction. Change events are delivered after the commit.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Scope identifies the ledger of one member.
type Scope = models.MemberScope

// Config configures a Service.
type Config struct {
	Policy   eligibility.Policy
	Location *time.Location   // Location used for calendar days and months. Defaults to UTC.
	Now      func() time.Time // Defaults to time.Now
}

// Service implements all ledger operations.
type Service struct {
	db       *gorm.DB
	policy   eligibility.Policy
	loc      *time.Location
	now      func() time.Time
	locks    *lockRegistry
	notifier *Notifier
}

// New returns a Service that stores its records in db.
func New(db *gorm.DB, cfg Config) *Service {
	if cfg.Policy.CutoffDay == 0 {
		cfg.Policy = eligibility.Policy{CutoffDay: eligibility.DefaultCutoffDay}
	}

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		db:       db,
		policy:   cfg.Policy,
		loc:      cfg.Location,
		now:      cfg.Now,
		locks:    newLockRegistry(),
		notifier: NewNotifier(),
	}
}

// Notifier returns the notifier events of this Service are published on.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// Policy returns the eligibility policy in use.
func (s *Service) Policy() eligibility.Policy {
	return s.policy
}

// Today returns the current calendar day in the configured location.
func (s *Service) Today() types.Date {
	return types.DateOf(s.now().In(s.loc))
}

// write runs fn for the member in scope under the member lock and inside a
// transaction. Events returned by fn are published after the commit.
func (s *Service) write(ctx context.Context, scope Scope, fn func(tx *gorm.DB) ([]Event, error)) error {
	var events []Event
	err := func() error {
		defer s.locks.lock(scope)()

		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := checkMember(tx, scope); err != nil {
				return err
			}

			var err error
			events, err = fn(tx)
			return err
		})
	}()

	if err != nil {
		writeFailures.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	at := s.now().UTC()
	for i := range events {
		events[i].FamilyID = scope.FamilyID
		events[i].MemberID = scope.MemberID
		events[i].At = at
	}
	s.notifier.publish(events...)

	return nil
}

// read runs fn against the database without taking the member lock.
func (s *Service) read(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(s.db.WithContext(ctx))
}

func checkMember(tx *gorm.DB, scope Scope) error {
	return tx.Where("id = ? AND family_id = ?", scope.MemberID, scope.FamilyID).First(&models.Member{}).Error
}

// scoped restricts a query to the records of one member.
func scoped(tx *gorm.DB, scope Scope) *gorm.DB {
	return tx.Where("family_id = ? AND member_id = ?", scope.FamilyID, scope.MemberID)
}

func loadBalance(tx *gorm.DB, scope Scope) (models.Balance, error) {
	var b models.Balance
	err := scoped(tx, scope).First(&b).Error
	return b, err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, models.ErrGeneral):
		return "storage"
	case errors.Is(err, models.ErrResourceNotFound):
		return "not_found"
	}

	return "validation"
}

// logReadFailure logs a failed read. Read operations return a zero value
// together with the error so callers can fall back to it.
func logReadFailure(scope Scope, op string, err error) {
	log.Error().
		Err(err).
		Str("family", scope.FamilyID.String()).
		Str("member", scope.MemberID.String()).
		Str("operation", op).
		Msg("ledger read failed")
}
