package systems

import (
	"time"

	"haste/internal/domain"
)

// Balance - числовые настройки симуляции. Загружаются из YAML поверх значений по умолчанию.
type Balance struct {
	DetectionRange int           `yaml:"detection_range"`
	EnemyMoveBase  time.Duration `yaml:"enemy_move_base"` // делится на скорость врага
	HitDelay       time.Duration `yaml:"hit_delay"`
	AttackFlash    time.Duration `yaml:"attack_flash"`

	PlayerMoveBase   time.Duration `yaml:"player_move_base"`   // делится на SPD и множитель класса
	PlayerAttackBase time.Duration `yaml:"player_attack_base"` // делится на SPD и множитель класса
	RayLength        int           `yaml:"ray_length"`
	TrailStep        time.Duration `yaml:"trail_step"`

	MaxEnemies      int `yaml:"max_enemies"`
	BaseEnemies     int `yaml:"base_enemies"`
	EnemiesPerLevel int `yaml:"enemies_per_level"`
	SpawnTries      int `yaml:"spawn_tries"`
	SpawnDistance   int `yaml:"spawn_distance"`

	XP     XPBalance     `yaml:"xp"`
	Boss   BossBalance   `yaml:"boss"`
	Bullet BulletBalance `yaml:"bullet"`
}

// XPBalance - диапазоны опыта за убийство по тирам
type XPBalance struct {
	Normal domain.Range `yaml:"normal"`
	Elite  domain.Range `yaml:"elite"`
	Boss   domain.Range `yaml:"boss"`
}

// BossBalance - настройки финального противника
type BossBalance struct {
	HP               int           `yaml:"hp"`
	Dmg              int           `yaml:"dmg"`
	Speed            int           `yaml:"speed"`
	Phase2SpeedBonus int           `yaml:"phase2_speed_bonus"`
	Waves            domain.Range  `yaml:"waves"`
	Directions       int           `yaml:"directions"`
	WaveOffset       float64       `yaml:"wave_offset"` // радианы
	Stagger          time.Duration `yaml:"stagger"`
	BaseDelay        time.Duration `yaml:"base_delay"`
	Variance         time.Duration `yaml:"variance"`
	Phase2FirstDelay time.Duration `yaml:"phase2_first_delay"`
	HomingChance     float64       `yaml:"homing_chance"`
	HomingDuration   time.Duration `yaml:"homing_duration"`
}

// BulletBalance - настройки пуль босса
type BulletBalance struct {
	Lifetime int           `yaml:"lifetime"` // в прыжках
	Speed    int           `yaml:"speed"`
	StepBase time.Duration `yaml:"step_base"` // делится на скорость
	PoolSize int           `yaml:"pool_size"`
}

// DefaultBalance возвращает значения исходной игры
func DefaultBalance() Balance {
	return Balance{
		DetectionRange: domain.DetectionRange,
		EnemyMoveBase:  1500 * time.Millisecond,
		HitDelay:       500 * time.Millisecond,
		AttackFlash:    200 * time.Millisecond,

		PlayerMoveBase:   20 * time.Millisecond,
		PlayerAttackBase: 10 * time.Millisecond,
		RayLength:        6,
		TrailStep:        80 * time.Millisecond,

		MaxEnemies:      domain.MaxEnemies,
		BaseEnemies:     8,
		EnemiesPerLevel: 1,
		SpawnTries:      200,
		SpawnDistance:   6,

		XP: XPBalance{
			Normal: domain.Range{Min: 3, Max: 6},
			Elite:  domain.Range{Min: 10, Max: 16},
			Boss:   domain.Range{Min: 50, Max: 80},
		},
		Boss: BossBalance{
			HP:               120,
			Dmg:              4,
			Speed:            5,
			Phase2SpeedBonus: 3,
			Waves:            domain.Range{Min: 2, Max: 4},
			Directions:       32,
			WaveOffset:       0.1,
			Stagger:          12 * time.Millisecond,
			BaseDelay:        2400 * time.Millisecond,
			Variance:         1200 * time.Millisecond,
			Phase2FirstDelay: 600 * time.Millisecond,
			HomingChance:     0.1,
			HomingDuration:   1500 * time.Millisecond,
		},
		Bullet: BulletBalance{
			Lifetime: 20,
			Speed:    6,
			StepBase: 600 * time.Millisecond,
			PoolSize: domain.MaxBullets,
		},
	}
}

// XPRange возвращает диапазон опыта для тира
func (b *Balance) XPRange(tier domain.Tier) domain.Range {
	switch tier {
	case domain.TierElite:
		return b.XP.Elite
	case domain.TierBoss:
		return b.XP.Boss
	}
	return b.XP.Normal
}

// EliteCount - чем выше удача, тем меньше элиты на уровне
func (b *Balance) EliteCount(lck int) int {
	switch {
	case lck >= 8:
		return 1
	case lck >= 5:
		return 2
	}
	return 3
}

// EnemyCount - обычных врагов на уровне
func (b *Balance) EnemyCount(level int) int {
	if level < 1 {
		level = 1
	}
	return b.BaseEnemies + b.EnemiesPerLevel*level
}

// BulletStep - пауза между прыжками пули
func (b *Balance) BulletStep(speed int) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	return b.Bullet.StepBase / time.Duration(speed)
}

// BossActionDelay - пауза между циклами босса, сокращается с ростом скорости
func (b *Balance) BossActionDelay(speed int) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	base := b.Boss.Speed
	if base <= 0 {
		base = 1
	}
	return b.Boss.BaseDelay * time.Duration(base) / time.Duration(speed)
}
