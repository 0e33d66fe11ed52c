package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Clock supplies creation times. Tests inject a fixed clock.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

// maxMintAttempts bounds how often a server-stamped row is retried one
// millisecond later after its derived ID collided with an existing row.
const maxMintAttempts = 3

// stampTime normalizes an explicit or clock-supplied time to the precision
// that IDs are derived from. explicit reports whether the caller fixed it.
func stampTime(clock Clock, at *time.Time) (time.Time, bool) {
	if at != nil && !at.IsZero() {
		return at.UTC().Truncate(time.Millisecond), true
	}
	if clock == nil {
		clock = SystemClock
	}
	return clock().UTC().Truncate(time.Millisecond), false
}

// mint runs insert with at and, for server-stamped rows only, retries on a
// duplicate key with at advanced by a millisecond. Caller-fixed times never
// move because the caller expects the ID derived from them.
func mint(at time.Time, explicit bool, insert func(at time.Time) error) error {
	var err error
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		err = insert(at)
		if err == nil || explicit || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		at = at.Add(time.Millisecond)
	}
	return err
}
