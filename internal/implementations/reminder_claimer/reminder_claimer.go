package reminderclaimer

import (
	"context"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/reminder"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
)

const keyPrefix = "reminder-claim:"

// Only the owner of a lease may drop it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Redis struct {
	redisClient *redis.Client
	ttl         time.Duration
	owner       string
}

func NewRedis(redisClient *redis.Client, ttl time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if ttl <= 0 {
		panic("claim ttl must be positive")
	}
	return &Redis{redisClient: redisClient, ttl: ttl, owner: uuid.NewString()}
}

func (r *Redis) Claim(ctx context.Context, id reminder.ID) (bool, error) {
	return r.redisClient.SetNX(ctx, key(id), r.owner, r.ttl).Result()
}

func (r *Redis) Release(ctx context.Context, id reminder.ID) error {
	err := releaseScript.Run(ctx, r.redisClient, []string{key(id)}, r.owner).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}

func key(id reminder.ID) string {
	return keyPrefix + string(id)
}
