package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stockle/internal/crypto"
)

// Server - конфигурация API инвентаря
type Server struct {
	Log       Log             `koanf:"log"`
	JWT       JWTConfig       `koanf:"jwt"`
	HTTP      HTTPConfig      `koanf:"http"`
	Database  DatabaseConfig  `koanf:"database"`
	Session   SessionConfig   `koanf:"session"`
	Redis     RedisConfig     `koanf:"redis"`
	MDNS      MDNSConfig      `koanf:"mdns"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	RSA       RSAConfig       `koanf:"rsa"`
}

// HTTPConfig - адрес и таймауты HTTP сервера
type HTTPConfig struct {
	Listen          string        `koanf:"listen"`
	ReadTimeout     time.Duration `koanf:"readtimeout"`
	WriteTimeout    time.Duration `koanf:"writetimeout"`
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout"`
}

// DatabaseConfig - путь к SQLite базе инвентаря
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// SessionConfig выбирает хранилище ключей сессии: memory или redis
type SessionConfig struct {
	Backend string        `koanf:"backend"`
	TTL     time.Duration `koanf:"ttl"`
}

// RedisConfig - подключение к Redis для общего хранилища сессий
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// JWTConfig - секрет и время жизни access token
type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

// RateLimitConfig - лимит запросов на клиента
type RateLimitConfig struct {
	RPS     float64       `koanf:"rps"`
	Burst   int           `koanf:"burst"`
	IdleTTL time.Duration `koanf:"idlettl"`
	Enabled bool          `koanf:"enabled"`
}

// MDNSConfig - анонс сервиса в локальной сети
type MDNSConfig struct {
	Service  string `koanf:"service"`
	Instance string `koanf:"instance"`
	Enabled  bool   `koanf:"enabled"`
}

// RSAConfig - ключ сервера; пустой KeyPath - новый ключ при каждом запуске
type RSAConfig struct {
	KeyPath string `koanf:"keypath"`
	Bits    int    `koanf:"bits"`
}

// Session backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// DefaultServiceType - тип mDNS сервиса API
const DefaultServiceType = "_stockle._tcp"

// DefaultServer возвращает конфигурацию сервера по умолчанию
func DefaultServer() Server {
	return Server{
		Log: Log{Level: "info"},
		HTTP: HTTPConfig{
			Listen:          ":5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "stockle.db"},
		Session:  SessionConfig{Backend: SessionBackendMemory, TTL: 24 * time.Hour},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		JWT:      JWTConfig{TTL: 15 * time.Minute},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
			IdleTTL: 10 * time.Minute,
		},
		MDNS: MDNSConfig{Enabled: true, Service: DefaultServiceType, Instance: "stockle-api"},
		RSA:  RSAConfig{Bits: crypto.DefaultRSABits},
	}
}

// LoadServer загружает конфигурацию сервера поверх умолчаний
func LoadServer(opts ...Option) (Server, error) {
	cfg := DefaultServer()
	if err := NewLoader(opts...).Load(&cfg); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c Server) Validate() error {
	var errs []error
	if c.HTTP.Listen == "" {
		errs = append(errs, errors.New("http.listen is required"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("jwt.ttl must be positive"))
	}
	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required for redis session backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown session.backend %q", c.Session.Backend))
	}
	if c.Session.Backend == SessionBackendRedis && c.RSA.KeyPath == "" {
		errs = append(errs, errors.New("rsa.keypath is required for redis session backend"))
	}
	if c.RSA.Bits < 512 || c.RSA.Bits%16 != 0 {
		errs = append(errs, fmt.Errorf("rsa.bits must be a multiple of 16 and at least 512, got %d", c.RSA.Bits))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1) {
		errs = append(errs, errors.New("ratelimit.rps and ratelimit.burst must be positive"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
