package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/pkg/api"
	"haste/pkg/logger"
)

// Upgrader - внешняя прокачка. Вызывается между уровнями и может только повышать Stats.
type Upgrader interface {
	Upgrade(p *domain.Player, clearedLevel int)
}

// InputSource - неблокирующий опрос ввода: не больше одного события за тик,
// InputNone если ничего не нажато.
type InputSource interface {
	Poll() domain.InputEvent
}

// Renderer получает снимок после каждого тика
type Renderer interface {
	Render(snap api.Snapshot)
}

// Runner ведет забег: тики по таймеру, переходы между уровнями, прокачка.
type Runner struct {
	RunID string

	cfg      Config
	sim      *Simulation
	input    InputSource
	render   Renderer
	upgrader Upgrader

	log *logrus.Entry
}

func NewRunner(cfg Config, player *domain.Player, clock Clock, input InputSource, render Renderer, upgrader Upgrader) *Runner {
	runID := uuid.NewString()
	r := &Runner{
		RunID:    runID,
		cfg:      cfg,
		sim:      NewSimulation(cfg, player, clock),
		input:    input,
		render:   render,
		upgrader: upgrader,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"run_id":    runID,
		}),
	}
	r.sim.log = r.sim.log.WithField("run_id", runID)
	return r
}

// Simulation - текущий забег (только для чтения снаружи)
func (r *Runner) Simulation() *Simulation { return r.sim }

// Start строит первый уровень
func (r *Runner) Start() error {
	r.log.WithFields(logrus.Fields{
		"seed":        r.cfg.Seed,
		"class":       r.sim.State().Player.Class.String(),
		"final_level": r.cfg.FinalLevel,
	}).Info("Run started.")

	if _, _, err := r.sim.SetupLevel(1); err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	return nil
}

// Run ведет забег до победы, смерти, выхода или отмены ctx.
func (r *Runner) Run(ctx context.Context) (api.Outcome, error) {
	if err := r.Start(); err != nil {
		return api.OutcomeDefeat, err
	}

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Run cancelled.")
			return api.OutcomeQuit, ctx.Err()
		case <-ticker.C:
			outcome, err := r.Step()
			if err != nil {
				return outcome, err
			}
			if outcome.IsTerminal() {
				r.log.WithFields(logrus.Fields{
					"outcome":  outcome.String(),
					"level":    r.sim.Level(),
					"total_xp": r.sim.State().Player.TotalXP,
				}).Info("Run finished.")
				return outcome, nil
			}
		}
	}
}

// Step - один тик: ввод, симуляция, рендер и, если уровень закончен, переход.
func (r *Runner) Step() (api.Outcome, error) {
	outcome := r.sim.Tick(r.input.Poll())
	r.render.Render(r.sim.Snapshot(outcome))

	switch outcome {
	case api.OutcomeLevelCleared:
		cleared := r.sim.Level()
		if r.upgrader != nil {
			r.upgrader.Upgrade(r.sim.State().Player, cleared)
		}
		if err := r.nextLevel(cleared + 1); err != nil {
			return outcome, err
		}
	case api.OutcomeJumpToFinal:
		if err := r.nextLevel(r.cfg.FinalLevel); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func (r *Runner) nextLevel(level int) error {
	r.log.WithFields(logrus.Fields{
		"from": r.sim.Level(),
		"to":   level,
	}).Info("Level transition.")

	if _, _, err := r.sim.SetupLevel(level); err != nil {
		return fmt.Errorf("level transition to %d: %w", level, err)
	}
	return nil
}
