package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haste/internal/core/types"
)

func TestArena_SpawnGetKill(t *testing.T) {
	reg := NewEnemyRegistry(2)

	h1, e1, ok := reg.Spawn(Enemy{HP: 5})
	require.True(t, ok)
	assert.Equal(t, types.KindEnemy, h1.Kind())
	assert.Equal(t, uint16(1), h1.Generation())
	assert.True(t, e1.Alive)

	got, ok := reg.Get(h1)
	require.True(t, ok)
	assert.Same(t, e1, got)

	assert.True(t, reg.Kill(h1))
	assert.False(t, reg.Kill(h1), "second kill is a no-op")
	_, ok = reg.Get(h1)
	assert.False(t, ok)
}

func TestArena_SlotReuseBumpsGeneration(t *testing.T) {
	reg := NewEnemyRegistry(1)

	h1, _, _ := reg.Spawn(Enemy{})
	reg.Kill(h1)
	h2, _, ok := reg.Spawn(Enemy{})
	require.True(t, ok)

	assert.Equal(t, h1.Index(), h2.Index())
	assert.NotEqual(t, h1.Generation(), h2.Generation())
	_, ok = reg.Get(h1)
	assert.False(t, ok, "stale handle must not resolve to the new occupant")
}

func TestArena_Full(t *testing.T) {
	pool := NewBulletPool(2)
	_, _, ok1 := pool.Spawn(Bullet{})
	_, _, ok2 := pool.Spawn(Bullet{})
	h, b, ok3 := pool.Spawn(Bullet{})

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
	assert.True(t, h.IsNil())
	assert.Nil(t, b)
	assert.Equal(t, 2, pool.Alive())
}

func TestArena_WrongKind(t *testing.T) {
	reg := NewEnemyRegistry(1)
	pool := NewBulletPool(1)
	hb, _, _ := pool.Spawn(Bullet{})
	reg.Spawn(Enemy{})

	_, ok := reg.Get(hb)
	assert.False(t, ok, "bullet handle must not resolve in enemy registry")
}

func TestArena_EachSkipsDead(t *testing.T) {
	reg := NewEnemyRegistry(4)
	var handles []types.Handle
	for i := 0; i < 4; i++ {
		h, _, _ := reg.Spawn(Enemy{HP: i})
		handles = append(handles, h)
	}
	reg.Kill(handles[1])

	var seen []int
	reg.Each(func(e *Enemy) { seen = append(seen, e.HP) })
	assert.Equal(t, []int{0, 2, 3}, seen)
}

func TestArena_Reset(t *testing.T) {
	reg := NewEnemyRegistry(3)
	h, _, _ := reg.Spawn(Enemy{})
	reg.Spawn(Enemy{})

	reg.Reset()
	assert.Equal(t, 0, reg.Alive())
	assert.Equal(t, 3, reg.Cap())

	h2, _, _ := reg.Spawn(Enemy{})
	assert.Equal(t, h.Index(), h2.Index())
	_, ok := reg.Get(h)
	assert.False(t, ok, "handles from the previous level stay invalid")
}
