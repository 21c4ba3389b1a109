package cache

import (
	"context"
	"encoding/json"
	"time"

	"peakform-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// QueryCache is a keyed read cache over Redis with an explicit invalidation
// API. Entries live until a mutation invalidates their prefix; only the
// identity key carries a short TTL so login/logout is noticed promptly.
// A nil client (or any Redis error) degrades to the database silently.
type QueryCache struct {
	client *redis.Client
	log    *logger.Logger
}

// Key prefixes, one per cached resource family.
const (
	PrefixDepartments    = "departments"
	PrefixTeams          = "teams"
	PrefixUsers          = "users"
	PrefixObjectives     = "objectives"
	PrefixTeamObjectives = "team_objectives"
	PrefixGoals          = "goals"
	PrefixCompetencies   = "competencies"
	PrefixPlans          = "plans"
	PrefixResources      = "resources"
	PrefixMeetings       = "meetings"
	PrefixRecognitions   = "recognitions"
	PrefixWebhooks       = "webhooks"
	PrefixReports        = "reports"
	PrefixIdentity       = "identity"
)

// IdentityTTL bounds how stale the authenticated-identity lookup may be.
const IdentityTTL = 30 * time.Second

// New creates a QueryCache. Pass a nil client to disable caching entirely.
func New(client *redis.Client) *QueryCache {
	return &QueryCache{client: client, log: logger.New()}
}

// NewClient connects to Redis and verifies the connection. Returns nil on
// failure so callers can run uncached.
func NewClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.New().WithError(err).Warn("redis unreachable, query cache disabled")
		return nil
	}
	return client
}

// Enabled reports whether a Redis client is wired in.
func (c *QueryCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals the cached value for prefix:key into dest. Returns false on
// miss, disabled cache, or any Redis/decoding error.
func (c *QueryCache) Get(ctx context.Context, prefix, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, prefix+":"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Debug("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.WithError(err).Debug("cache entry corrupt, treating as miss")
		return false
	}
	return true
}

// Set stores value under prefix:key with no expiry. The identity prefix is
// the exception and always gets IdentityTTL.
func (c *QueryCache) Set(ctx context.Context, prefix, key string, value interface{}) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).Debug("cache set marshal failed")
		return
	}
	ttl := time.Duration(0)
	if prefix == PrefixIdentity {
		ttl = IdentityTTL
	}
	if err := c.client.Set(ctx, prefix+":"+key, raw, ttl).Err(); err != nil {
		c.log.WithError(err).Debug("cache set failed")
	}
}

// Invalidate drops every entry under each given prefix. Called by services
// after a successful mutation.
func (c *QueryCache) Invalidate(ctx context.Context, prefixes ...string) {
	if !c.Enabled() {
		return
	}
	for _, prefix := range prefixes {
		iter := c.client.Scan(ctx, 0, prefix+":*", 0).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.log.WithError(err).Debug("cache scan failed")
			continue
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.WithError(err).Debug("cache invalidate failed")
			}
		}
	}
}
