package domain

import (
	"fmt"
	"strings"
)

// Stats - характеристики персонажа. Растут только (меняет их внешний коллаборатор прокачки).
type Stats struct {
	VGR int `json:"vgr" yaml:"vgr"` // живучесть
	STR int `json:"str" yaml:"str"` // сила
	SPD int `json:"spd" yaml:"spd"` // скорость
	INT int `json:"int" yaml:"int"` // интеллект
	LCK int `json:"lck" yaml:"lck"` // удача
}

// StatKind - имя характеристики (для прокачки)
type StatKind uint8

const (
	StatVGR StatKind = iota
	StatSTR
	StatSPD
	StatINT
	StatLCK
)

var statToString = map[StatKind]string{
	StatVGR: "VGR",
	StatSTR: "STR",
	StatSPD: "SPD",
	StatINT: "INT",
	StatLCK: "LCK",
}

func (s StatKind) String() string {
	if val, ok := statToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// MaxHP пересчитывается заново при каждом изменении VGR
func (s Stats) MaxHP() int {
	return 30 + 2*s.VGR
}

// Raise увеличивает характеристику. Отрицательный прирост игнорируется.
func (s *Stats) Raise(kind StatKind, amount int) {
	if amount <= 0 {
		return
	}
	switch kind {
	case StatVGR:
		s.VGR += amount
	case StatSTR:
		s.STR += amount
	case StatSPD:
		s.SPD += amount
	case StatINT:
		s.INT += amount
	case StatLCK:
		s.LCK += amount
	}
}

// EffectiveSPD защищает деление: SPD <= 0 считается 1
func (s Stats) EffectiveSPD() int {
	if s.SPD <= 0 {
		return 1
	}
	return s.SPD
}

// ClassModifiers - множители класса, задаются один раз при создании персонажа
type ClassModifiers struct {
	MoveSpeedMult float64 `json:"moveSpeedMult" yaml:"move_speed_mult"`
	AtkSpeedMult  float64 `json:"atkSpeedMult" yaml:"atk_speed_mult"`
	DmgMult       float64 `json:"dmgMult" yaml:"dmg_mult"`
}

// Class - класс персонажа
type Class uint8

const (
	ClassUnknown Class = iota
	ClassCannoneer
	ClassGunslinger
	ClassSorcerer
)

var classToString = map[Class]string{
	ClassCannoneer:  "Cannoneer",
	ClassGunslinger: "Gunslinger",
	ClassSorcerer:   "Sorcerer",
}

var classStringToType = map[string]Class{
	"CANNONEER":  ClassCannoneer,
	"GUNSLINGER": ClassGunslinger,
	"SORCERER":   ClassSorcerer,
}

func (c Class) String() string {
	if val, ok := classToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseClass принимает имя класса (без учета регистра) или его номер в меню ("1".."3")
func ParseClass(s string) (Class, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return ClassCannoneer, nil
	case "2":
		return ClassGunslinger, nil
	case "3":
		return ClassSorcerer, nil
	}
	if val, ok := classStringToType[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return val, nil
	}
	return ClassUnknown, fmt.Errorf("%q: %w", s, ErrUnknownClass)
}

// ClassProfile - стартовые характеристики и множители класса
type ClassProfile struct {
	Stats Stats
	Mods  ClassModifiers
}

// Profile возвращает стартовый профиль класса
func (c Class) Profile() ClassProfile {
	switch c {
	case ClassCannoneer: // медленный, но бьет сильно
		return ClassProfile{Stats: Stats{VGR: 20, STR: 20, SPD: 10, INT: 2, LCK: 5}, Mods: ClassModifiers{0.8, 1.0, 1.5}}
	case ClassGunslinger: // быстрый, слабый урон
		return ClassProfile{Stats: Stats{VGR: 15, STR: 15, SPD: 26, INT: 1, LCK: 6}, Mods: ClassModifiers{1.3, 1.5, 0.8}}
	case ClassSorcerer:
		return ClassProfile{Stats: Stats{VGR: 10, STR: 6, SPD: 15, INT: 20, LCK: 8}, Mods: ClassModifiers{1.0, 1.2, 1.2}}
	}
	return ClassProfile{Stats: Stats{SPD: 1}, Mods: ClassModifiers{1, 1, 1}}
}

// PrimaryStat - характеристика, от которой считается урон класса
func (c Class) PrimaryStat() StatKind {
	if c == ClassSorcerer {
		return StatINT
	}
	return StatSTR
}

// Projectile - вид снаряда атаки класса
func (c Class) Projectile() ProjectileKind {
	switch c {
	case ClassSorcerer:
		return ProjectileBolt
	case ClassGunslinger:
		return ProjectileShot
	}
	return ProjectileCannonball
}
