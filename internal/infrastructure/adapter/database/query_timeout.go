package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const queryCancelKey = "sims:query_cancel"

// registerQueryTimeout bounds every create, query, update and delete statement by timeout.
// The statement's own context still wins when its deadline is earlier.
// Row and Raw are left alone because their results are read after the callbacks return.
func registerQueryTimeout(db *gorm.DB, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}

	before := func(tx *gorm.DB) {
		ctx, cancel := context.WithTimeout(tx.Statement.Context, timeout)
		tx.Statement.Context = ctx
		tx.InstanceSet(queryCancelKey, cancel)
	}
	after := func(tx *gorm.DB) {
		if cancel, ok := tx.InstanceGet(queryCancelKey); ok {
			cancel.(context.CancelFunc)()
		}
	}

	callbacks := db.Callback()
	register := []struct {
		name   string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"create", callbacks.Create().Before("*").Register, callbacks.Create().After("*").Register},
		{"query", callbacks.Query().Before("*").Register, callbacks.Query().After("*").Register},
		{"update", callbacks.Update().Before("*").Register, callbacks.Update().After("*").Register},
		{"delete", callbacks.Delete().Before("*").Register, callbacks.Delete().After("*").Register},
	}
	for _, r := range register {
		if err := r.before("sims:"+r.name+"_timeout", before); err != nil {
			return fmt.Errorf("register %s timeout: %w", r.name, err)
		}
		if err := r.after("sims:"+r.name+"_timeout_cancel", after); err != nil {
			return fmt.Errorf("register %s timeout cancel: %w", r.name, err)
		}
	}
	return nil
}
