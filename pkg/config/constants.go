package config

const (
	EnvPrefix = "QUOTER"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "QUOTER_DB_DSN"
	EnvDBHost = "QUOTER_DB_HOST"
	EnvDBUser = "QUOTER_DB_USER"
	EnvDBName = "QUOTER_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
