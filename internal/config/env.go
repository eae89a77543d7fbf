package config

// Database describes the shared Postgres instance. The pool stays deliberately
// small: the backing store is a constrained shared service, so callers wait a
// bounded time for a connection instead of piling more of them on.
type Database struct {
	Host           string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port           int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name           string `mapstructure:"DATABASE_NAME" default:"labdb"`
	User           string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password       string `mapstructure:"DATABASE_PASSWORD" default:"labdb"`
	MaxOpenConns   int    `mapstructure:"DATABASE_POOL_MAX" default:"5"`
	MaxIdleConns   int    `mapstructure:"DATABASE_POOL_IDLE" default:"1"`
	AcquireTimeout int    `mapstructure:"DATABASE_ACQUIRE_TIMEOUT" default:"10"` // seconds
}

type Redis struct {
	Host     string `mapstructure:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" default:"0"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"labdb"`
	Service  string `mapstructure:"SERVICE" default:"api"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

type RPC struct {
	PubChem RPCPubChem `mapstructure:",squash"`
}

type RPCPubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

// Delete configures the two-step delete confirmation flow.
type Delete struct {
	ConfirmTTL int `mapstructure:"DELETE_CONFIRM_TTL" default:"300"` // seconds
}
