package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSlotLocked is returned by a SlotLocker when another booking holds the slot.
var ErrSlotLocked = errors.New("slot locked")

// SlotLocker serialises concurrent bookings of one doctor instant.
type SlotLocker interface {
	// Acquire takes the lock for doctorID at the given instant. release must
	// be called once the booking is stored or abandoned.
	Acquire(ctx context.Context, doctorID int64, at time.Time) (release func(), err error)
}
