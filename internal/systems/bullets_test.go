package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haste/internal/core/types"
	"haste/internal/domain"
)

func spawnBullet(t *testing.T, s *State, b domain.Bullet) (types.Handle, *domain.Bullet) {
	t.Helper()
	h, slot, ok := s.Bullets.Spawn(b)
	require.True(t, ok)
	slot.Handle = h
	return h, slot
}

func TestUpdateBullets_StepAndLifetime(t *testing.T) {
	s := newTestState(t, []string{
		"##########",
		"#       P#",
		"##########",
	})
	step := s.Balance.BulletStep(6) // 100ms
	_, b := spawnBullet(t, s, domain.Bullet{Pos: domain.Position{Row: 1, Col: 1}, Dir: domain.DirRight, Damage: 3, Speed: 6, Lifetime: 5})

	UpdateBullets(s, step-time.Millisecond)
	assert.Equal(t, 1, b.Pos.Col, "cooldown not elapsed")

	UpdateBullets(s, step)
	assert.Equal(t, 2, b.Pos.Col)
	assert.Equal(t, 4, b.Lifetime)
}

func TestUpdateBullets_Invisible(t *testing.T) {
	s := newTestState(t, []string{"######", "#   P#", "######"})
	_, b := spawnBullet(t, s, domain.Bullet{Pos: domain.Position{Row: 1, Col: 1}, Dir: domain.DirRight, Speed: 6, Lifetime: 5, VisibleAt: time.Second, LastMove: time.Second})

	UpdateBullets(s, 500*time.Millisecond)
	assert.Equal(t, 1, b.Pos.Col)
	assert.True(t, b.Alive)
}

func TestUpdateBullets_Wall(t *testing.T) {
	s := newTestState(t, []string{"#####", "#P  #", "#####"})
	h, _ := spawnBullet(t, s, domain.Bullet{Pos: domain.Position{Row: 1, Col: 3}, Dir: domain.DirRight, Speed: 6, Lifetime: 5})

	UpdateBullets(s, time.Second)
	_, ok := s.Bullets.Get(h)
	assert.False(t, ok, "bullet entering a wall is removed")
}

func TestUpdateBullets_LifetimeExpires(t *testing.T) {
	s := newTestState(t, []string{"########", "#P     #", "########"})
	h, _ := spawnBullet(t, s, domain.Bullet{Pos: domain.Position{Row: 1, Col: 3}, Dir: domain.DirRight, Speed: 6, Lifetime: 1})

	UpdateBullets(s, time.Second)
	_, ok := s.Bullets.Get(h)
	assert.False(t, ok)
}

func TestUpdateBullets_HitsPlayerOnce(t *testing.T) {
	s := newTestState(t, []string{"######", "#  P #", "######"})
	hp := s.Player.HP
	h, _ := spawnBullet(t, s, domain.Bullet{Pos: domain.Position{Row: 1, Col: 2}, Dir: domain.DirRight, Damage: 4, Speed: 6, Lifetime: 5})

	dealt := UpdateBullets(s, time.Second)
	assert.Equal(t, 4, dealt)
	assert.Equal(t, hp-4, s.Player.HP)
	_, ok := s.Bullets.Get(h)
	assert.False(t, ok)

	assert.Equal(t, 0, UpdateBullets(s, 2*time.Second))
	assert.Equal(t, hp-4, s.Player.HP)
}

func TestUpdateBullets_Homing(t *testing.T) {
	s := newTestState(t, openRows(7, 7, domain.Position{Row: 5, Col: 3}))
	_, b := spawnBullet(t, s, domain.Bullet{
		Pos: domain.Position{Row: 1, Col: 3}, Dir: domain.DirRight, Speed: 6, Lifetime: 10,
		Homing: true, HomingUntil: time.Second,
	})

	UpdateBullets(s, 200*time.Millisecond)
	assert.Equal(t, domain.DirDown, b.Dir)
	assert.Equal(t, domain.Position{Row: 2, Col: 3}, b.Pos)

	// После дедлайна направление больше не меняется
	movePlayer(t, s, domain.Position{Row: 5, Col: 1})
	UpdateBullets(s, 2*time.Second)
	assert.Equal(t, domain.DirDown, b.Dir)
}
