package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"haste/internal/systems"
)

// ErrInvalidConfig - конфиг не прошел проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависит весь забег:
	// генерация уровней, броски врагов, залпы босса.
	Seed int64 `yaml:"seed"`

	// TickInterval - период игрового цикла
	TickInterval time.Duration `yaml:"tick_interval"`

	// FinalLevel - номер уровня с боссом
	FinalLevel int `yaml:"final_level"`

	Balance systems.Balance `yaml:"balance"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		TickInterval: 40 * time.Millisecond,
		FinalLevel:   4,
		Balance:      systems.DefaultBalance(),
	}
}

// LoadConfig читает YAML-файл поверх значений по умолчанию.
// Пустой путь означает конфиг по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate отбрасывает значения, с которыми симуляция не может работать
func (c Config) Validate() error {
	b := c.Balance
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.TickInterval > 0, "tick_interval must be positive, got %s", c.TickInterval)
	check(c.FinalLevel >= 1, "final_level must be >= 1, got %d", c.FinalLevel)

	check(b.MaxEnemies > 0, "max_enemies must be positive, got %d", b.MaxEnemies)
	check(b.Bullet.PoolSize > 0, "bullet.pool_size must be positive, got %d", b.Bullet.PoolSize)
	check(b.RayLength > 0, "ray_length must be positive, got %d", b.RayLength)
	check(b.DetectionRange >= 0, "detection_range must not be negative, got %d", b.DetectionRange)
	check(b.SpawnTries > 0, "spawn_tries must be positive, got %d", b.SpawnTries)
	check(b.Boss.Directions > 0, "boss.directions must be positive, got %d", b.Boss.Directions)
	check(b.Boss.Stagger > 0, "boss.stagger must be positive, got %s", b.Boss.Stagger)
	check(b.Boss.HP > 0, "boss.hp must be positive, got %d", b.Boss.HP)
	check(b.Boss.HomingChance >= 0 && b.Boss.HomingChance <= 1, "boss.homing_chance must be in [0,1], got %v", b.Boss.HomingChance)
	check(b.Boss.Variance >= 0, "boss.variance must not be negative, got %s", b.Boss.Variance)
	check(b.Bullet.Lifetime > 0, "bullet.lifetime must be positive, got %d", b.Bullet.Lifetime)

	check(b.Boss.Waves.Valid() && b.Boss.Waves.Min >= 1, "boss.waves range %v is invalid", b.Boss.Waves)
	check(b.XP.Normal.Valid(), "xp.normal range %v is inverted", b.XP.Normal)
	check(b.XP.Elite.Valid(), "xp.elite range %v is inverted", b.XP.Elite)
	check(b.XP.Boss.Valid(), "xp.boss range %v is inverted", b.XP.Boss)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
