package redis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mesa-market/internal/core/port"
)

// Redis truncates Lua numbers to integers on return, so the fractional
// token count comes back as a string.
const tokenBucketScript = `
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl = tonumber(ARGV[3])

local nowData = redis.call("TIME")
local now = (nowData[1] * 1000) + math.floor(nowData[2] / 1000)

local data = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(data[1])
local ts = tonumber(data[2])

if tokens == nil then
  tokens = burst
else
  local delta = now - ts
  if delta < 0 then
    delta = 0
  end
  tokens = math.min(burst, tokens + (delta / 1000) * rate)
end
ts = now

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call("HSET", KEYS[1], "tokens", tokens, "ts", ts)
redis.call("PEXPIRE", KEYS[1], ttl)

return {allowed, tostring(tokens), ts}
`

const keyPrefix = "mesa-market:ratelimit:"

// TokenBucket implements port.RateLimiter with one Redis hash per key,
// refilled continuously at rate tokens per second up to burst.
type TokenBucket struct {
	client goredis.Scripter
	script *goredis.Script
}

func NewTokenBucket(client goredis.Scripter) *TokenBucket {
	return &TokenBucket{client: client, script: goredis.NewScript(tokenBucketScript)}
}

func (t *TokenBucket) Allow(ctx context.Context, key string, rate float64, burst int) (*port.RateLimitResult, error) {
	if key == "" {
		return nil, errors.New("rate limiter key is empty")
	}
	if rate <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rate limiter needs positive rate and burst, got %v/%d", rate, burst)
	}

	ttl := bucketTTL(rate, burst)
	res, err := t.script.Run(ctx, t.client, []string{keyPrefix + key}, rate, burst, ttl.Milliseconds()).Slice()
	if err != nil {
		return nil, fmt.Errorf("run token bucket: %w", err)
	}
	if len(res) < 3 {
		return nil, errors.New("invalid rate limit script response")
	}
	return bucketResult(res, rate, burst), nil
}

func bucketResult(res []interface{}, rate float64, burst int) *port.RateLimitResult {
	allowed := toInt(res[0]) == 1
	remaining := toFloat(res[1])
	ts := time.UnixMilli(toInt(res[2]))

	var retryAfter time.Duration
	if !allowed {
		retryAfter = time.Duration((1 - remaining) / rate * float64(time.Second))
	}
	// Time until the bucket is full again.
	reset := time.Duration((float64(burst) - remaining) / rate * float64(time.Second))

	return &port.RateLimitResult{
		Allowed:    allowed,
		Limit:      burst,
		Remaining:  int(math.Floor(remaining)),
		ResetTime:  ts.Add(reset),
		RetryAfter: retryAfter,
	}
}

// bucketTTL keeps an idle bucket around for twice its refill time.
func bucketTTL(rate float64, burst int) time.Duration {
	seconds := math.Ceil(float64(burst) / rate * 2)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func toInt(v interface{}) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	default:
		return 0
	}
}

func toFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	default:
		return 0
	}
}
