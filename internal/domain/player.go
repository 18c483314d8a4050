package domain

// Player - единственный экземпляр на забег.
// Позиция и HP принадлежат симуляции, Stats меняет только прокачка между уровнями.
type Player struct {
	Pos     Position       `json:"pos"`
	HP      int            `json:"hp"`
	Stats   Stats          `json:"stats"`
	Class   Class          `json:"class"`
	Mods    ClassModifiers `json:"mods"`
	XP      int            `json:"xp"`      // неизрасходованный опыт
	TotalXP int            `json:"totalXp"` // весь опыт за забег
	Facing  Direction      `json:"facing"`  // последнее направление ввода
}

// NewPlayer создает персонажа выбранного класса с полным HP
func NewPlayer(class Class) *Player {
	profile := class.Profile()
	return &Player{
		HP:     profile.Stats.MaxHP(),
		Stats:  profile.Stats,
		Class:  class,
		Mods:   profile.Mods,
		Facing: DirRight,
	}
}

// MaxHP - производная от VGR
func (p *Player) MaxHP() int {
	return p.Stats.MaxHP()
}

// IsDead - HP <= 0
func (p *Player) IsDead() bool {
	return p.HP <= 0
}

// TakeDamage наносит урон. Возвращает true, если игрок погиб.
func (p *Player) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	p.HP -= amount
	return p.HP <= 0
}

// GainXP начисляет опыт
func (p *Player) GainXP(amount int) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	p.TotalXP += amount
}

// SpendXP списывает опыт. Возвращает false, если не хватает.
func (p *Player) SpendXP(amount int) bool {
	if amount < 0 || p.XP < amount {
		return false
	}
	p.XP -= amount
	return true
}

// Refill пересчитывает MaxHP и восстанавливает HP (начало уровня)
func (p *Player) Refill() {
	p.HP = p.MaxHP()
}
