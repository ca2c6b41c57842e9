package worker

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const expiryKey = "payments:pending_deadlines"

// RedisExpiryStore guarda os prazos de pagamento num sorted set, com o
// deadline (unix) como score. O watcher varre os vencidos por score.
type RedisExpiryStore struct {
	rdb *redis.Client
}

func NewRedisExpiryStore(rdb *redis.Client) *RedisExpiryStore {
	return &RedisExpiryStore{rdb: rdb}
}

func (s *RedisExpiryStore) Track(
	ctx context.Context,
	transactionID uint,
	deadline time.Time,
) error {
	return s.rdb.ZAdd(ctx, expiryKey, &redis.Z{
		Score:  float64(deadline.Unix()),
		Member: strconv.FormatUint(uint64(transactionID), 10),
	}).Err()
}

func (s *RedisExpiryStore) Untrack(
	ctx context.Context,
	transactionID uint,
) error {
	return s.rdb.ZRem(
		ctx,
		expiryKey,
		strconv.FormatUint(uint64(transactionID), 10),
	).Err()
}

// Due devolve as transações com prazo vencido até o instante dado.
func (s *RedisExpiryStore) Due(ctx context.Context, now time.Time) ([]uint, error) {
	members, err := s.rdb.ZRangeByScore(ctx, expiryKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}
