package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type MySQL struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Storage struct {
	Driver string // sqlite, mysql, redis or memory
	Path   string // sqlite database file
	Prefix string // key prefix for the collections
	MySQL  MySQL
	Redis  Redis
}

type Config struct {
	HTTP    HTTP
	Storage Storage
	JWT     struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Admin struct {
		Username string
		Password string
	}
	Log struct {
		Level string
		Path  string
	}
}

var v *viper.Viper

func Load(path string) (*Config, error) {
	v = viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("checkboard.http.host", "127.0.0.1")
	v.SetDefault("checkboard.http.port", 9500)
	v.SetDefault("checkboard.storage.driver", "sqlite")
	v.SetDefault("checkboard.storage.path", filepath.Join("data", "checkboard.db"))
	v.SetDefault("checkboard.storage.prefix", "business_checklists")
	v.SetDefault("checkboard.storage.mysql.host", "127.0.0.1")
	v.SetDefault("checkboard.storage.mysql.port", 3306)
	v.SetDefault("checkboard.storage.mysql.user", "root")
	v.SetDefault("checkboard.storage.mysql.pass", "")
	v.SetDefault("checkboard.storage.mysql.name", "checkboard")
	v.SetDefault("checkboard.storage.redis.addr", "127.0.0.1:6379")
	v.SetDefault("checkboard.storage.redis.password", "")
	v.SetDefault("checkboard.storage.redis.db", 0)
	v.SetDefault("checkboard.jwt.secret", "dev-secret")
	v.SetDefault("checkboard.jwt.issuer", "checkboard")
	v.SetDefault("checkboard.jwt.exp_min", 60)
	v.SetDefault("checkboard.admin.username", "admin")
	v.SetDefault("checkboard.admin.password", "admin")
	v.SetDefault("checkboard.log.level", "info")
	v.SetDefault("checkboard.log.path", "")

	// A missing config file means defaults only.
	_ = v.ReadInConfig()

	return fromViper(v), nil
}

// Watch re-reads the config file on change and hands the reloaded config to
// onChange. Only settings that can be applied live (log level) should be
// taken from it; storage and server settings require a restart.
func Watch(onChange func(*Config)) {
	if v == nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange(fromViper(v))
	})
	v.WatchConfig()
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{
			Host: v.GetString("checkboard.http.host"),
			Port: v.GetInt("checkboard.http.port"),
		},
		Storage: Storage{
			Driver: v.GetString("checkboard.storage.driver"),
			Path:   v.GetString("checkboard.storage.path"),
			Prefix: v.GetString("checkboard.storage.prefix"),
			MySQL: MySQL{
				Host: v.GetString("checkboard.storage.mysql.host"),
				Port: v.GetInt("checkboard.storage.mysql.port"),
				User: v.GetString("checkboard.storage.mysql.user"),
				Pass: v.GetString("checkboard.storage.mysql.pass"),
				Name: v.GetString("checkboard.storage.mysql.name"),
			},
			Redis: Redis{
				Addr:     v.GetString("checkboard.storage.redis.addr"),
				Password: v.GetString("checkboard.storage.redis.password"),
				DB:       v.GetInt("checkboard.storage.redis.db"),
			},
		},
	}
	cfg.JWT.Secret = v.GetString("checkboard.jwt.secret")
	cfg.JWT.Issuer = v.GetString("checkboard.jwt.issuer")
	cfg.JWT.ExpMin = v.GetInt("checkboard.jwt.exp_min")
	cfg.Admin.Username = v.GetString("checkboard.admin.username")
	cfg.Admin.Password = v.GetString("checkboard.admin.password")
	cfg.Log.Level = v.GetString("checkboard.log.level")
	cfg.Log.Path = v.GetString("checkboard.log.path")
	return cfg
}
