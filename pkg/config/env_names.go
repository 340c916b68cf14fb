package config

const (
	// EnvPrefix scopes all envconfig lookups.
	EnvPrefix = "WAREHOUSE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "WAREHOUSE_DB_DSN"
	EnvDBHost = "WAREHOUSE_DB_HOST"
	EnvDBUser = "WAREHOUSE_DB_USER"
	EnvDBName = "WAREHOUSE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
