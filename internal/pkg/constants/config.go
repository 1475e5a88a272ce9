package constants

// viper keys
const (
	ViperKeyListenAddr  = "listen_addr"
	ViperKeyDatabaseDSN = "database_dsn"
	ViperKeyCORSOrigins = "cors_origins"
	ViperKeyDebug       = "debug"
	ViperSecretKey      = "secret_key"
)

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUsername = "username"
)
