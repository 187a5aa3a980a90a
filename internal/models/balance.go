package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Balance is the money bucket ledger of one member.
//
// Total is the lifetime inflow and never decreases outside of Reset.
type Balance struct {
	DefaultModel
	FamilyID  uuid.UUID `json:"familyId" gorm:"type:uuid;index"`
	Member    Member    `json:"-"`
	MemberID  uuid.UUID `json:"memberId" gorm:"type:uuid;uniqueIndex"`
	Available int64     `json:"available" example:"120"`
	Allocated int64     `json:"allocated" example:"30"`
	Spent     int64     `json:"spent" example:"40"`
	Total     int64     `json:"total" example:"190"`
	Version   int64     `json:"version" example:"7"`
}

// AfterFind clamps buckets that somehow went negative.
func (b *Balance) AfterFind(tx *gorm.DB) error {
	for name, v := range map[string]*int64{
		"available": &b.Available,
		"allocated": &b.Allocated,
		"spent":     &b.Spent,
		"total":     &b.Total,
	} {
		if *v < 0 {
			log.Warn().
				Str("family", b.FamilyID.String()).
				Str("member", b.MemberID.String()).
				Str("field", name).
				Int64("value", *v).
				Msg("negative balance bucket clamped to zero")
			*v = 0
		}
	}

	return b.DefaultModel.AfterFind(tx)
}

// Add puts money into available and counts it towards the total.
func (b *Balance) Add(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	b.Available += amount
	b.Total += amount
	return nil
}

// Spend moves money from available to spent.
func (b *Balance) Spend(amount int64) error {
	if err := b.check(amount, b.Available, "available"); err != nil {
		return err
	}

	b.Available -= amount
	b.Spent += amount
	return nil
}

// Allocate moves money from available to allocated.
func (b *Balance) Allocate(amount int64) error {
	if err := b.check(amount, b.Available, "available"); err != nil {
		return err
	}

	b.Available -= amount
	b.Allocated += amount
	return nil
}

// Deallocate moves money from allocated back to available.
func (b *Balance) Deallocate(amount int64) error {
	if err := b.check(amount, b.Allocated, "allocated"); err != nil {
		return err
	}

	b.Allocated -= amount
	b.Available += amount
	return nil
}

// MoveAllocatedToSpent moves money from allocated to spent.
func (b *Balance) MoveAllocatedToSpent(amount int64) error {
	if err := b.check(amount, b.Allocated, "allocated"); err != nil {
		return err
	}

	b.Allocated -= amount
	b.Spent += amount
	return nil
}

// Reset zeroes all buckets.
func (b *Balance) Reset() {
	b.Available, b.Allocated, b.Spent, b.Total = 0, 0, 0, 0
}

func (b *Balance) check(amount, bucket int64, name string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if bucket < amount {
		return fmt.Errorf("%w: %s is %d, need %d", ErrInsufficientFunds, name, bucket, amount)
	}

	return nil
}

// SaveVersioned writes the buckets if nobody else wrote the row since it was
// read, and bumps the version.
func (b *Balance) SaveVersioned(tx *gorm.DB) error {
	res := tx.Model(&Balance{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]any{
			"available": b.Available,
			"allocated": b.Allocated,
			"spent":     b.Spent,
			"total":     b.Total,
			"version":   b.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrConcurrentModification
	}

	b.Version++
	return nil
}
