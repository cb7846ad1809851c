package configs

// RateLimit configures the per-client token buckets. Rate is tokens per
// second, Burst the bucket capacity. The Auth pair applies to /api/auth.
type RateLimit struct {
	Enabled   bool    `env:"ENABLED" envDefault:"true"`
	Rate      float64 `env:"RATE" envDefault:"10"`
	Burst     int     `env:"BURST" envDefault:"30"`
	AuthRate  float64 `env:"AUTH_RATE" envDefault:"1"`
	AuthBurst int     `env:"AUTH_BURST" envDefault:"5"`
}

// Active reports whether limiting should be wired given a Redis address.
func (c RateLimit) Active(redisAddr string) bool {
	return c.Enabled && redisAddr != ""
}
