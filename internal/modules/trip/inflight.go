// README: Redis-backed single-outstanding-call lease per user.
package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// inflightTTL caps how long a lease can linger if a release is lost (e.g. a
// crashed worker); generation calls finish well inside it.
const inflightTTL = 2 * time.Minute

// InflightGuard enforces one outstanding generation (or events) call per
// authenticated user. The UI disables re-submission client-side; this is the
// server-side rendition of the same rule, not a quota.
type InflightGuard struct {
	rdb *redis.Client
}

// NewInflightGuard returns a guard backed by rdb. A nil client yields a
// guard that admits everything, for deployments without Redis.
func NewInflightGuard(rdb *redis.Client) *InflightGuard {
	return &InflightGuard{rdb: rdb}
}

// Acquire takes the lease for uid+kind. It returns ErrInFlight when a call is
// already outstanding, otherwise a release func the caller must invoke when
// the call finishes. A guard failure never blocks the request; the lease is
// an optimization, not a correctness gate.
func (g *InflightGuard) Acquire(ctx context.Context, uid, kind string) (func(), error) {
	if g == nil || g.rdb == nil || uid == "" {
		return func() {}, nil
	}
	key := fmt.Sprintf("inflight:%s:%s", kind, uid)
	ok, err := g.rdb.SetNX(ctx, key, 1, inflightTTL).Result()
	if err != nil {
		return func() {}, nil
	}
	if !ok {
		return nil, ErrInFlight
	}
	return func() {
		g.rdb.Del(context.Background(), key)
	}, nil
}
