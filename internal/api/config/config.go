package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := Load("./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// Load 读取 paths 下的 config.yaml，文件缺失时使用默认值，环境变量 RONGHUA_* 覆盖文件
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("RONGHUA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PublicAPI.Mode != PublicAPIFixture && cfg.PublicAPI.Mode != PublicAPIStore {
		return nil, fmt.Errorf("invalid public_api.mode %q", cfg.PublicAPI.Mode)
	}
	if cfg.Session.Store != "memory" && cfg.Session.Store != "redis" {
		return nil, fmt.Errorf("invalid session.store %q", cfg.Session.Store)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("app.name", "绒花非遗传承平台")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "ronghua.db")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 100)
	v.SetDefault("database.max_lifetime", 3600)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie_name", "admin_session")
	v.SetDefault("session.ttl_minutes", 720)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("jwt.secret", "ronghua-secret-key-change-in-production")
	v.SetDefault("jwt.issuer", "ronghua")
	v.SetDefault("jwt.expire_minutes", 60*24*7)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	v.SetDefault("upload.max_file_size", 5*1024*1024)
	v.SetDefault("upload.allowed_extensions", []string{".jpg", ".jpeg", ".png", ".gif", ".mp4", ".mov"})

	v.SetDefault("minio.bucket", "ronghua")
	v.SetDefault("minio.thumbnail_width", 320)

	v.SetDefault("mongo.database", "ronghua")

	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("public_api.mode", PublicAPIFixture)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.index", "logstash-ronghua")
}
