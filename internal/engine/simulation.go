package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/internal/engine/handlers"
	"haste/internal/engine/handlers/actions"
	"haste/internal/engine/handlers/admin"
	"haste/internal/systems"
	"haste/pkg/api"
	"haste/pkg/dungeon"
	"haste/pkg/logger"
)

// Simulation - один забег: состояние, часы и порядок систем внутри тика.
// Однопоточная, все мутации происходят внутри Tick.
type Simulation struct {
	cfg   Config
	clock Clock
	state *systems.State

	level int
	tick  int
	now   time.Duration // время последнего тика

	handlers map[domain.InputEvent]handlers.HandlerFunc

	// Перезарядка игрока: одна на все действия
	locked     bool
	cooldown   handlers.Cooldown
	lastAction time.Duration

	log *logrus.Entry
}

// NewSimulation создает забег. Генератор случайных чисел строится от cfg.Seed,
// поэтому один и тот же сид с одними и теми же часами дает один и тот же забег.
func NewSimulation(cfg Config, player *domain.Player, clock Clock) *Simulation {
	balance := cfg.Balance
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Simulation{
		cfg:      cfg,
		clock:    clock,
		state:    systems.NewState(player, &balance, rng),
		handlers: make(map[domain.InputEvent]handlers.HandlerFunc),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"seed":      cfg.Seed,
		}),
	}
	s.registerHandlers()
	return s
}

func (s *Simulation) registerHandlers() {
	move := handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.InputMoveUp] = move
	s.handlers[domain.InputMoveDown] = move
	s.handlers[domain.InputMoveLeft] = move
	s.handlers[domain.InputMoveRight] = move
	s.handlers[domain.InputAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	s.handlers[domain.InputQuit] = handlers.WithEmptyPayload(actions.HandleQuit)
	s.handlers[domain.InputDebugJump] = handlers.WithEmptyPayload(admin.HandleJumpToFinal)
}

// State - состояние забега (для рендера и тестов)
func (s *Simulation) State() *systems.State { return s.state }

// Level - номер текущего уровня
func (s *Simulation) Level() int { return s.level }

// FinalLevel - номер уровня с боссом
func (s *Simulation) FinalLevel() int { return s.cfg.FinalLevel }

// SetupLevel строит уровень: карту, игрока и врагов. Реестры врагов и пуль сбрасываются
// полностью, HP игрока пересчитывается от VGR и восполняется.
// Последний уровень - арена с боссом, остальные генерируются.
func (s *Simulation) SetupLevel(level int) (*domain.Grid, domain.Position, error) {
	if level < 1 {
		level = 1
	}
	if level > s.cfg.FinalLevel {
		level = s.cfg.FinalLevel
	}
	now := s.clock.Now()
	final := level == s.cfg.FinalLevel

	var (
		grid *domain.Grid
		err  error
	)
	if final {
		grid, _, err = dungeon.BossArena()
		if err != nil {
			return nil, domain.Position{}, fmt.Errorf("setup level %d: %w", level, err)
		}
	} else {
		grid, _ = dungeon.Generate(level, s.state.Rng)
	}

	// Единственная фатальная ошибка инициализации: на карте нет игрока
	start, err := grid.FindPlayer()
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("setup level %d: %w", level, err)
	}

	s.state.Reset(grid, start)
	s.state.Player.Refill()
	s.level = level
	s.tick = 0
	s.now = now
	s.locked = false

	if final {
		s.state.Teleports = dungeon.TeleportPoints
		s.spawnBoss(now)
	} else {
		s.spawnWave(now)
	}

	s.log.WithFields(logrus.Fields{
		"level":   level,
		"final":   final,
		"enemies": s.state.Enemies.Alive(),
		"hp":      s.state.Player.HP,
		"start":   start,
	}).Info("Level ready.")

	return grid, start, nil
}

func (s *Simulation) spawnRules() dungeon.SpawnRules {
	b := s.state.Balance
	return dungeon.SpawnRules{Tries: b.SpawnTries, MinDistance: b.SpawnDistance}
}

// spawnWave: обычные враги по номеру уровня и элита по удаче игрока
func (s *Simulation) spawnWave(now time.Duration) {
	st := s.state
	rules := s.spawnRules()
	plan := []struct {
		tier  domain.Tier
		count int
	}{
		{domain.TierNormal, st.Balance.EnemyCount(s.level)},
		{domain.TierElite, st.Balance.EliteCount(st.Player.Stats.LCK)},
	}

	for _, p := range plan {
		tmpl := dungeon.TemplateFor(p.tier)
		for i := 0; i < p.count; i++ {
			if e, ok := dungeon.SpawnEnemy(st.Grid, st.Enemies, tmpl, s.level, st.Player.Pos, rules, st.Rng); ok {
				e.LastMove = now
			}
		}
	}
}

// spawnBoss ставит босса на его клетку арены, при неудаче - на случайный свободный ряд
func (s *Simulation) spawnBoss(now time.Duration) {
	st := s.state
	bb := st.Balance.Boss
	tmpl := dungeon.BossTemplate(bb.HP, bb.Dmg, bb.Speed)

	e := tmpl.Roll(s.level, st.Rng)
	e.Pos = dungeon.BossSpawn
	boss, ok := dungeon.SpawnAt(st.Grid, st.Enemies, e)
	if !ok {
		boss, ok = dungeon.SpawnEnemy(st.Grid, st.Enemies, tmpl, s.level, st.Player.Pos, s.spawnRules(), st.Rng)
	}
	if !ok {
		s.log.Warn("Boss could not be placed.")
		return
	}
	boss.LastMove = now
	boss.NextAction = now + bb.BaseDelay
}

// Tick выполняет один шаг симуляции в фиксированном порядке:
// пули, касание и движение каждого врага, проверка победы, ввод игрока.
func (s *Simulation) Tick(input domain.InputEvent) api.Outcome {
	now := s.clock.Now()
	s.now = now
	s.tick++
	st := s.state

	st.PruneTrail(now)

	systems.UpdateBullets(st, now)
	if st.Player.IsDead() {
		return s.finish(api.OutcomeDefeat)
	}

	dead := false
	st.Enemies.Each(func(e *domain.Enemy) {
		if dead {
			return
		}
		if e.IsBoss() {
			systems.UpdateBoss(st, e, now)
			return
		}
		systems.EnemyTryAttack(st, e, now)
		if st.Player.IsDead() {
			dead = true
			return
		}
		systems.UpdateEnemyAI(st, e, now)
	})
	if dead {
		return s.finish(api.OutcomeDefeat)
	}

	if st.Enemies.Alive() == 0 {
		if s.level >= s.cfg.FinalLevel {
			return s.finish(api.OutcomeVictory)
		}
		return s.finish(api.OutcomeLevelCleared)
	}

	return s.handleInput(input, now)
}

// handleInput применяет ввод игрока. Тик под перезарядкой целиком уходит на нее:
// снятие блокировки проверяется, а ввод (кроме выхода) отбрасывается, даже если
// блокировка снята в этом же тике. Так после каждого действия теряется минимум один тик.
func (s *Simulation) handleInput(input domain.InputEvent, now time.Duration) api.Outcome {
	if s.locked && input != domain.InputQuit {
		if now-s.lastAction > s.ActionDelay(s.cooldown) {
			s.locked = false
		}
		if input != domain.InputNone {
			s.log.WithField("input", input.String()).Debug("Input dropped during cooldown.")
		}
		return api.OutcomeRunning
	}
	if input == domain.InputNone {
		return api.OutcomeRunning
	}

	handler, ok := s.handlers[input]
	if !ok {
		return api.OutcomeRunning
	}

	var payload json.RawMessage
	if dir, ok := input.Direction(); ok {
		raw, err := json.Marshal(api.DirectionPayload{DR: dir.DR, DC: dir.DC})
		if err != nil {
			s.log.WithError(err).WithField("input", input.String()).Warn("Cannot encode input payload.")
			return api.OutcomeRunning
		}
		payload = raw
	}

	res, err := handler(handlers.Context{State: s.state, Now: now}, payload)
	if err != nil {
		s.log.WithError(err).WithField("input", input.String()).Warn("Input rejected.")
		return api.OutcomeRunning
	}

	if res.Msg != "" {
		s.log.WithFields(logrus.Fields{
			"level":    s.level,
			"log_type": res.MsgType,
		}).Info(res.Msg)
	}

	if res.Cooldown != handlers.CooldownNone {
		s.locked = true
		s.cooldown = res.Cooldown
		s.lastAction = now
	}

	if res.Outcome != api.OutcomeRunning {
		return s.finish(res.Outcome)
	}
	return api.OutcomeRunning
}

func (s *Simulation) finish(o api.Outcome) api.Outcome {
	s.log.WithFields(logrus.Fields{
		"level":    s.level,
		"tick":     s.tick,
		"outcome":  o.String(),
		"hp":       s.state.Player.HP,
		"total_xp": s.state.Player.TotalXP,
	}).Info("Level finished.")
	return o
}

// ActionDelay - длительность перезарядки игрока: база / SPD / множитель класса
func (s *Simulation) ActionDelay(c handlers.Cooldown) time.Duration {
	p := s.state.Player
	b := s.state.Balance

	base, mult := b.PlayerMoveBase, p.Mods.MoveSpeedMult
	if c == handlers.CooldownAttack {
		base, mult = b.PlayerAttackBase, p.Mods.AtkSpeedMult
	}
	if mult <= 0 {
		mult = 1
	}
	return time.Duration(float64(base) / float64(p.Stats.EffectiveSPD()) / mult)
}

// IsLocked - действие игрока на перезарядке
func (s *Simulation) IsLocked() bool { return s.locked }
