package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	App       AppConfig       `mapstructure:"app"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	Admin     AdminConfig     `mapstructure:"admin"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Upload    UploadConfig    `mapstructure:"upload"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	LLM       LLMConfig       `mapstructure:"llm"`
	PublicAPI PublicAPIConfig `mapstructure:"public_api"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// DBConfig 数据库配置，driver 取值 mysql / sqlite
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// SessionConfig 管理员会话，store 取值 memory / redis
type SessionConfig struct {
	Store      string `mapstructure:"store"`
	CookieName string `mapstructure:"cookie_name"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	Secure     bool   `mapstructure:"secure"`
}

// AdminConfig 后台唯一的管理员账号
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	Issuer        string `mapstructure:"issuer"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type UploadConfig struct {
	MaxFileSize       int64    `mapstructure:"max_file_size"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	ThumbnailWidth   int    `mapstructure:"thumbnail_width"`
}

type MongoConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type LLMConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	URL         string  `mapstructure:"url"`
	Model       string  `mapstructure:"model"`
	ApiKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
}

// PublicAPIConfig 对外接口数据来源，mode 取值 fixture / store
type PublicAPIConfig struct {
	Mode string `mapstructure:"mode"`
}

// LoggerConfig 日志，RemoteAddr 为空时只输出到标准输出
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	RemoteAddr string `mapstructure:"remote_addr"`
	Index      string `mapstructure:"index"`
	Token      string `mapstructure:"token"`
}

const (
	PublicAPIFixture = "fixture"
	PublicAPIStore   = "store"
)

// UseStore 对外接口是否读写数据库
func (c PublicAPIConfig) UseStore() bool {
	return c.Mode == PublicAPIStore
}
