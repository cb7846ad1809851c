package configs

// Redis holds the address of the Redis server backing the rate limiter.
// Address accepts host:port or a redis:// URL. Empty disables rate
// limiting.
type Redis struct {
	Address string `env:"ADDRESS"`
}
