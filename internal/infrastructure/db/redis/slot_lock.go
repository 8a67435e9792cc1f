package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const defaultLockTTL = 10 * time.Second

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another booking is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SlotLock serialises bookings of the same doctor instant across API replicas.
// Key format: slot:<doctor_id>:<unix_timestamp>
type SlotLock struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var _ ports.SlotLocker = (*SlotLock)(nil)

// NewSlotLock creates a SlotLock. A non-positive ttl uses defaultLockTTL.
func NewSlotLock(client *redis.Client, ttl time.Duration, log zerolog.Logger) *SlotLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &SlotLock{client: client, ttl: ttl, log: log}
}

// Acquire sets the slot key if absent. ports.ErrSlotLocked means another
// booking holds it; any other error means Redis could not answer.
func (l *SlotLock) Acquire(ctx context.Context, doctorID int64, at time.Time) (func(), error) {
	key := l.key(doctorID, at)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("slot lock: %w", err)
	}
	if !ok {
		return nil, ports.ErrSlotLocked
	}

	return func() {
		// The request context may already be done.
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("slot lock release failed")
		}
	}, nil
}

func (l *SlotLock) key(doctorID int64, at time.Time) string {
	return fmt.Sprintf("slot:%d:%d", doctorID, at.Unix())
}
