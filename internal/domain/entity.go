package domain

import (
	"time"

	"haste/internal/core/types"
)

// Tier - класс силы врага
type Tier uint8

const (
	TierNormal Tier = iota
	TierElite
	TierBoss
)

var tierToString = map[Tier]string{
	TierNormal: "NORMAL",
	TierElite:  "ELITE",
	TierBoss:   "BOSS",
}

func (t Tier) String() string {
	if val, ok := tierToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ContactState - логическая фаза ближнего боя (когда враг касается игрока)
type ContactState uint8

const (
	ContactNone             ContactState = iota // не рядом с игроком
	ContactAwaitingFirstHit                     // только что коснулся, замах
	ContactInCycle                              // уже бьет с периодом hit-delay
)

// VisualState - чисто визуальное состояние, выбирает вариант глифа.
// Живет по собственному таймеру, независимо от ContactState.
type VisualState uint8

const (
	VisualBase VisualState = iota
	VisualWindup
	VisualFlash
)

// Enemy - запись врага в реестре. Время - смещения монотонных часов симуляции.
type Enemy struct {
	Handle types.Handle
	Alive  bool
	Tier   Tier
	Shape  string // символы ряда, по одному на клетку
	Width  int

	HP    int
	MaxHP int
	Dmg   int
	Speed int

	Pos   Position
	Aggro bool // липкий: раз выставлен - не сбрасывается

	LastMove time.Duration

	Contact      ContactState
	ContactSince time.Duration

	Visual      VisualState
	VisualUntil time.Duration

	// Только для босса
	Phase      int
	NextAction time.Duration
}

func (e *Enemy) IsAlive() bool { return e.Alive }
func (e *Enemy) SetAlive(v bool) { e.Alive = v }

// IsBoss - босс управляется собственным контроллером фаз
func (e *Enemy) IsBoss() bool { return e.Tier == TierBoss }

// Occupies проверяет, входит ли клетка в ряд врага
func (e *Enemy) Occupies(p Position) bool {
	return p.Row == e.Pos.Row && p.Col >= e.Pos.Col && p.Col < e.Pos.Col+e.Width
}

// ProjectileKind - вид снаряда (для глифа на границе рендера)
type ProjectileKind uint8

const (
	ProjectileBolt       ProjectileKind = iota // заклинание: '|' или '-' по оси
	ProjectileShot                             // пуля стрелка: '*'
	ProjectileCannonball                       // ядро: '0'
	ProjectileBossBullet                       // пуля босса: '*'
)

// Bullet - снаряд босса в пуле фиксированной емкости
type Bullet struct {
	Handle types.Handle
	Alive  bool

	Pos      Position
	Dir      Direction
	Damage   int
	Speed    int
	Lifetime int // оставшиеся прыжки
	Kind     ProjectileKind

	VisibleAt   time.Duration
	LastMove    time.Duration
	Homing      bool
	HomingUntil time.Duration
}

func (b *Bullet) IsAlive() bool { return b.Alive }
func (b *Bullet) SetAlive(v bool) { b.Alive = v }
