package cmd

type Config struct {
	HTTPPort              string
	JWTSecret             string
	JWTIssuer             string
	JWTAudience           string
	AccessTokenTTLMinutes int
	RefreshTokenTTLDays   int
	SeedAdminPassword     string
}
