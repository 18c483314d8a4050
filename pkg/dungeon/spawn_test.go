package dungeon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haste/internal/domain"
)

func TestEnemyTemplate_Roll(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		e := Grunt.Roll(1, rng)
		assert.True(t, Grunt.HP.Contains(e.HP))
		assert.Equal(t, e.HP, e.MaxHP)
		assert.Equal(t, 1, e.Width)
		assert.Contains(t, "mzky", e.Shape)
	}

	elite := Elite.Roll(5, rng)
	assert.Equal(t, 2, elite.Width)
	assert.GreaterOrEqual(t, elite.HP, Elite.HP.Min+8)
	assert.GreaterOrEqual(t, elite.Dmg, Elite.Dmg.Min+2)

	boss := BossTemplate(120, 4, 5).Roll(4, rng)
	assert.Equal(t, 120, boss.HP)
	assert.Equal(t, domain.TierBoss, boss.Tier)
	assert.Equal(t, 1, boss.Phase)
}

func TestSpawnEnemy_RespectsDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	grid, start := Generate(1, rng)
	reg := domain.NewEnemyRegistry(domain.MaxEnemies)

	for i := 0; i < 10; i++ {
		e, ok := SpawnEnemy(grid, reg, Elite, 1, start, DefaultSpawnRules, rng)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, e.Pos.Manhattan(start), DefaultSpawnRules.MinDistance)
		tile := grid.At(e.Pos)
		assert.Equal(t, domain.TileEnemy, tile.Kind)
		assert.Equal(t, e.Handle, tile.Enemy)
	}
}

func TestSpawnEnemy_ExhaustedIsNotFatal(t *testing.T) {
	grid, _ := domain.ParseGrid([]string{
		"#####",
		"#P  #",
		"#####",
	})
	reg := domain.NewEnemyRegistry(4)
	rng := rand.New(rand.NewSource(1))

	e, ok := SpawnEnemy(grid, reg, Grunt, 1, domain.Position{Row: 1, Col: 1}, DefaultSpawnRules, rng)
	assert.False(t, ok)
	assert.Nil(t, e)
	assert.Equal(t, 0, reg.Alive())
}

func TestSpawnAt_RegistryFull(t *testing.T) {
	grid, _ := domain.ParseGrid([]string{
		"######",
		"#    #",
		"######",
	})
	reg := domain.NewEnemyRegistry(1)

	first := Grunt.Roll(1, rand.New(rand.NewSource(1)))
	first.Pos = domain.Position{Row: 1, Col: 1}
	_, ok := SpawnAt(grid, reg, first)
	require.True(t, ok)

	second := first
	second.Pos = domain.Position{Row: 1, Col: 3}
	_, ok = SpawnAt(grid, reg, second)
	assert.False(t, ok)
	assert.True(t, grid.IsEmpty(second.Pos), "rejected enemy must not be drawn")
}
