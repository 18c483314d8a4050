package engine

import (
	"haste/internal/core/types"
	"haste/internal/domain"
	"haste/internal/systems"
	"haste/pkg/api"
)

// Глифы клеток. Тайлы хранятся типизированными, символ появляется только здесь.
var (
	glyphWall   = types.MakeGlyph(types.ColorWall, '#')
	glyphPlayer = types.MakeGlyph(types.ColorPlayer, 'P')
	glyphBullet = types.MakeGlyph(types.ColorProjectile, '*')
)

// Snapshot собирает снимок для рендера на момент последнего тика
func (s *Simulation) Snapshot(outcome api.Outcome) api.Snapshot {
	st := s.state
	snap := api.Snapshot{
		Tick:    s.tick,
		Level:   s.level,
		Outcome: outcome,
	}
	if st.Grid == nil {
		return snap
	}

	g := st.Grid
	snap.Grid = api.GridMeta{Rows: g.Rows, Cols: g.Cols}
	snap.Cells = make([]types.Glyph, g.Rows*g.Cols)

	// 1. Тайлы
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := domain.Position{Row: r, Col: c}
			snap.Cells[r*g.Cols+c] = s.tileGlyph(g.At(p))
		}
	}

	// 2. След атаки игрока (только в окне [From, Until))
	for _, m := range st.Trail {
		if s.now < m.From || s.now >= m.Until || g.IsWall(m.Pos) {
			continue
		}
		snap.Cells[m.Pos.Row*g.Cols+m.Pos.Col] = trailGlyph(m)
	}

	// 3. Пули босса, которые уже видны
	st.Bullets.Each(func(b *domain.Bullet) {
		if s.now < b.VisibleAt || !g.InBounds(b.Pos) || g.IsWall(b.Pos) {
			return
		}
		snap.Cells[b.Pos.Row*g.Cols+b.Pos.Col] = glyphBullet
	})

	snap.HUD = s.buildHUD()
	return snap
}

func (s *Simulation) buildHUD() api.HUD {
	p := s.state.Player
	hud := api.HUD{
		HP:       p.HP,
		MaxHP:    p.MaxHP(),
		XP:       p.XP,
		TotalXP:  p.TotalXP,
		Class:    p.Class.String(),
		Cooldown: s.locked,
	}
	if boss, ok := s.state.Boss(); ok {
		hud.Boss = &api.BossView{HP: boss.HP, MaxHP: boss.MaxHP, Phase: boss.Phase}
	}
	return hud
}

func (s *Simulation) tileGlyph(t domain.Tile) types.Glyph {
	switch t.Kind {
	case domain.TileWall:
		return glyphWall
	case domain.TilePlayer:
		return glyphPlayer
	case domain.TileEnemy:
		if e, ok := s.state.Enemies.Get(t.Enemy); ok {
			return enemyGlyph(e, int(t.Segment))
		}
	}
	return types.Blank
}

// enemyGlyph: символ сегмента ряда, замах 'x', удар 'X'
func enemyGlyph(e *domain.Enemy, segment int) types.Glyph {
	var ch byte = '?'
	if segment >= 0 && segment < len(e.Shape) {
		ch = e.Shape[segment]
	}
	switch e.Visual {
	case domain.VisualWindup:
		ch = 'x'
	case domain.VisualFlash:
		ch = 'X'
	}

	color := types.ColorNormal
	switch e.Tier {
	case domain.TierElite:
		color = types.ColorElite
	case domain.TierBoss:
		color = types.ColorBoss
	}
	return types.MakeGlyph(color, ch)
}

// trailGlyph: заклинание рисуется по оси полета, стрелок '*', ядро '0'
func trailGlyph(m systems.TrailMark) types.Glyph {
	var ch byte
	switch m.Kind {
	case domain.ProjectileBolt:
		ch = '-'
		if m.Dir.IsVertical() {
			ch = '|'
		}
	case domain.ProjectileShot, domain.ProjectileBossBullet:
		ch = '*'
	case domain.ProjectileCannonball:
		ch = '0'
	}
	return types.MakeGlyph(types.ColorProjectile, ch)
}
