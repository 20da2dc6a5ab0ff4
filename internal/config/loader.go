// Package config загружает настройки сервера и кассового агента.
//
// Источники по возрастанию приоритета: значения по умолчанию, YAML-файл,
// переменные окружения с префиксом STOCKLE_ (STOCKLE_SYNC_INTERVAL -> sync.interval).
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix - префикс переменных окружения
const DefaultEnvPrefix = "STOCKLE_"

// Loader собирает конфигурацию из нескольких источников
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option настраивает Loader
type Option func(*Loader)

// WithEnvPrefix задает префикс переменных окружения
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile задает путь к YAML-файлу
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader создает загрузчик конфигурации
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load читает файл и окружение и накладывает их поверх target.
// Поля target, не встретившиеся ни в одном источнике, сохраняют свои значения (умолчания).
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", l.filePath, err)
		}
	}

	// STOCKLE_SERVER_URL -> server.url
	transform := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("failed to load env: %w", err)
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// Log - настройки логирования
type Log struct {
	Level string `koanf:"level"` // debug|info|warn|error
}

// SlogLevel переводит текстовый уровень в slog.Level
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
