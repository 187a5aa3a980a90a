package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type FHContext string

const (
	DBContextURL FHContext = "fh-backend-url"
)

// constraintErrors maps database constraint violations to errors users can act on.
var constraintErrors = map[string]error{
	"UNIQUE constraint failed: members.family_id, members.name": ErrMemberNameNotUnique,
	"UNIQUE constraint failed: tasks.family_id, tasks.name":     ErrTaskNameNotUnique,
	"CHECK constraint failed: member_role_valid":                ErrInvalidRole,
	"CHECK constraint failed: task_reward_positive":             ErrAmountNotPositive,
	"CHECK constraint failed: task_daily_limit_positive":        ErrDailyLimitNotPositive,
	"CHECK constraint failed: earning_amount_positive":          ErrAmountNotPositive,
	"CHECK constraint failed: goal_target_positive":             ErrAmountNotPositive,
	"CHECK constraint failed: investment_amount_positive":       ErrAmountNotPositive,
}

// Connect opens the SQLite database, migrates it and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration runs with foreign keys disabled since sqlite
	// copies tables when it changes columns
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writes and prevents SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "family_helper:after_query", queryCallback},
		{db.Callback().Query().After("*"), "family_helper:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "family_helper:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "family_helper:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "family_helper:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "family_helper:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "family_helper:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "family_helper:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db

	return nil
}

var pluralIES = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIES.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user friendly errors
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for match, err := range constraintErrors {
		if strings.Contains(db.Error.Error(), match) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Cleanup order: models referencing others come first so that
// foreign keys are never violated.
var all = []any{
	Allocation{},
	InvestmentRecord{},
	EarningRecord{},
	TaskCompletion{},
	Task{},
	Goal{},
	GoalSavings{},
	Balance{},
	Member{},
	Family{},
}

// All returns every model, dependents first.
func All() []any {
	return all
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Family{}, Member{}, Balance{}, GoalSavings{}, Task{}, TaskCompletion{}, EarningRecord{}, Goal{}, InvestmentRecord{}, Allocation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
