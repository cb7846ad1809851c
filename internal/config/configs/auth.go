package configs

// Auth configures the session validator. Tokens are HS256 JWTs signed by
// the identity provider with Secret. Issuer and Audience are checked only
// when set.
type Auth struct {
	Secret   string `env:"SECRET,required,notEmpty"`
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`
	// CookieName is consulted when a request carries no bearer token.
	CookieName string `env:"COOKIE_NAME" envDefault:"session_token"`
}
