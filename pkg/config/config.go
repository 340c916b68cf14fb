package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	ImageHost     ImageHostConfig
	Renderer      RendererConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WAREHOUSE_APP_ENV" required:"true"`
	Port         string `envconfig:"WAREHOUSE_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"WAREHOUSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WAREHOUSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WAREHOUSE_DB_DSN"`
	Driver string `envconfig:"WAREHOUSE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WAREHOUSE_DB_HOST"`
	LegacyPort     int    `envconfig:"WAREHOUSE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WAREHOUSE_DB_USER"`
	LegacyPassword string `envconfig:"WAREHOUSE_DB_PASSWORD"`
	LegacyName     string `envconfig:"WAREHOUSE_DB_NAME"`
	LegacySSLMode  string `envconfig:"WAREHOUSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WAREHOUSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WAREHOUSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WAREHOUSE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WAREHOUSE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WAREHOUSE_REDIS_URL"`
	Address      string        `envconfig:"WAREHOUSE_REDIS_ADDR"`
	Password     string        `envconfig:"WAREHOUSE_REDIS_PASSWORD"`
	DB           int           `envconfig:"WAREHOUSE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WAREHOUSE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WAREHOUSE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WAREHOUSE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WAREHOUSE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WAREHOUSE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"WAREHOUSE_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"WAREHOUSE_JWT_ISSUER" default:"warehouse-api"`
	// Tokens stay valid for 100 hours and cannot be revoked early;
	// there is no server-side session store.
	ExpirationMinutes int `envconfig:"WAREHOUSE_JWT_EXPIRATION_MINUTES" default:"6000"`
}

// TokenTTL returns the access token validity window.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"WAREHOUSE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"WAREHOUSE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"WAREHOUSE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"WAREHOUSE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"WAREHOUSE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"WAREHOUSE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// ImageHostConfig points at the external service that stores face images.
// Only the returned URL is persisted locally.
type ImageHostConfig struct {
	UploadURL   string        `envconfig:"WAREHOUSE_IMAGE_HOST_UPLOAD_URL"`
	APIKey      string        `envconfig:"WAREHOUSE_IMAGE_HOST_API_KEY"`
	Folder      string        `envconfig:"WAREHOUSE_IMAGE_HOST_FOLDER" default:"faces"`
	Timeout     time.Duration `envconfig:"WAREHOUSE_IMAGE_HOST_TIMEOUT" default:"15s"`
	MaxUploadMB int           `envconfig:"WAREHOUSE_IMAGE_HOST_MAX_UPLOAD_MB" default:"5"`
}

// RendererConfig holds the addresses of the two external visualization
// services. Both are opaque HTTP collaborators with no retry policy.
type RendererConfig struct {
	RouteURL string        `envconfig:"WAREHOUSE_RENDERER_ROUTE_URL" default:"http://127.0.0.1:8001/route"`
	ShelfURL string        `envconfig:"WAREHOUSE_RENDERER_SHELF_URL" default:"http://127.0.0.1:8002/shelves"`
	Timeout  time.Duration `envconfig:"WAREHOUSE_RENDERER_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"WAREHOUSE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"WAREHOUSE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
