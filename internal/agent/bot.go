package agent

import (
	"github.com/sirupsen/logrus"

	"haste/internal/domain"
	"haste/internal/engine"
	"haste/internal/systems"
	"haste/pkg/api"
	"haste/pkg/logger"
)

// Bot - автопилот игрока (Headless Agent).
// Он видит мир только через снимки, как и обычный рендер, и отвечает событиями ввода,
// как клавиатура. Runner не отличает его от человека.
//
// Жизненный цикл:
//  1. Render -> Бот запоминает последний снимок и пересылает его дальше (если есть View).
//  2. Poll -> Бот строит локальную карту из снимка и решает, что нажать.
type Bot struct {
	// View получает снимки после бота (например, терминал). Может быть nil.
	View engine.Renderer

	// Human опрашивается первым: нажатая клавиша важнее решения бота. Может быть nil.
	Human engine.InputSource

	// RayLength - дальность выстрела, в пределах которой бот стреляет
	RayLength int

	last   *api.Snapshot
	facing domain.Direction
	log    *logrus.Entry
}

func NewBot(rayLength int, view engine.Renderer, human engine.InputSource) *Bot {
	return &Bot{
		View:      view,
		Human:     human,
		RayLength: rayLength,
		facing:    domain.DirRight, // как у нового персонажа
		log:       logger.Log.WithField("component", "agent"),
	}
}

// Render реализует engine.Renderer
func (b *Bot) Render(snap api.Snapshot) {
	b.last = &snap
	if b.View != nil {
		b.View.Render(snap)
	}
}

// Poll реализует engine.InputSource
func (b *Bot) Poll() domain.InputEvent {
	if b.Human != nil {
		if ev := b.Human.Poll(); ev != domain.InputNone {
			return ev
		}
	}
	// Под перезарядкой ввод все равно отбросят, а поворот потеряется
	if b.last == nil || b.last.Outcome != api.OutcomeRunning || b.last.HUD.Cooldown {
		return domain.InputNone
	}
	return b.decide(*b.last)
}

// decide - мозг бота: стрелять, если враг на линии огня, иначе идти к ближайшему.
func (b *Bot) decide(snap api.Snapshot) domain.InputEvent {
	// --- ШАГ 1: ВОССОЗДАНИЕ ЛОКАЛЬНОЙ КАРТИНЫ МИРА ---
	me, enemies, ok := scan(snap)
	if !ok || len(enemies) == 0 {
		return domain.InputNone
	}

	// --- ШАГ 2: ВРАГ НА ЛИНИИ ОГНЯ ---
	if dir, ok := b.lineOfFire(snap, me); ok {
		if dir == b.facing {
			return domain.InputAttack
		}
		return b.turn(dir)
	}

	// --- ШАГ 3: ПУТЬ К БЛИЖАЙШЕМУ ВРАГУ ---
	grid, err := localGrid(snap)
	if err != nil {
		b.log.WithError(err).Warn("Cannot rebuild local map.")
		return domain.InputNone
	}
	target := nearest(me, enemies)
	walker := &domain.Enemy{Pos: me, Width: 1}
	step, ok := systems.FindNextStep(grid, walker, target, grid.Rows+grid.Cols)
	if !ok {
		return domain.InputNone
	}
	return b.turn(me.DirectionTo(step))
}

// turn запоминает направление взгляда и возвращает событие движения
func (b *Bot) turn(dir domain.Direction) domain.InputEvent {
	for _, ev := range []domain.InputEvent{domain.InputMoveUp, domain.InputMoveDown, domain.InputMoveLeft, domain.InputMoveRight} {
		if d, _ := ev.Direction(); d == dir {
			b.facing = dir
			return ev
		}
	}
	return domain.InputNone
}

// lineOfFire ищет врага по прямой не дальше RayLength, до первой стены
func (b *Bot) lineOfFire(snap api.Snapshot, me domain.Position) (domain.Direction, bool) {
	// Сначала текущее направление, чтобы не крутиться зря
	dirs := append([]domain.Direction{b.facing}, domain.Orthogonal[:]...)
	for _, d := range dirs {
		cur := me
		for i := 0; i < b.RayLength; i++ {
			cur = cur.Step(d)
			ch := snap.At(cur.Row, cur.Col).Char()
			if ch == '#' || cur.Row < 0 || cur.Row >= snap.Grid.Rows || cur.Col < 0 || cur.Col >= snap.Grid.Cols {
				break
			}
			if isEnemy(ch) {
				return d, true
			}
		}
	}
	return domain.Direction{}, false
}

func scan(snap api.Snapshot) (me domain.Position, enemies []domain.Position, found bool) {
	for r := 0; r < snap.Grid.Rows; r++ {
		for c := 0; c < snap.Grid.Cols; c++ {
			ch := snap.At(r, c).Char()
			switch {
			case ch == 'P':
				me, found = domain.Position{Row: r, Col: c}, true
			case isEnemy(ch):
				enemies = append(enemies, domain.Position{Row: r, Col: c})
			}
		}
	}
	return me, enemies, found
}

// localGrid: стены из снимка, все остальное пол (враги не мешают поиску пути)
func localGrid(snap api.Snapshot) (*domain.Grid, error) {
	rows := make([]string, snap.Grid.Rows)
	for r := range rows {
		line := []byte(snap.Row(r))
		for c, ch := range line {
			if ch != '#' && ch != 'P' {
				line[c] = ' '
			}
		}
		rows[r] = string(line)
	}
	return domain.ParseGrid(rows)
}

func nearest(from domain.Position, targets []domain.Position) domain.Position {
	best := targets[0]
	for _, t := range targets[1:] {
		if from.Manhattan(t) < from.Manhattan(best) {
			best = t
		}
	}
	return best
}

func isEnemy(ch byte) bool {
	return ch != 'P' && (ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z')
}
