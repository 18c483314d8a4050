package domain

import "time"

// EffectiveSpeed защищает деление: speed <= 0 считается 1
func (e *Enemy) EffectiveSpeed() int {
	if e.Speed <= 0 {
		return 1
	}
	return e.Speed
}

// MoveDelay - пауза между шагами: base / speed
func (e *Enemy) MoveDelay(base time.Duration) time.Duration {
	return base / time.Duration(e.EffectiveSpeed())
}

// IsReady проверяет, прошел ли кулдаун движения
func (e *Enemy) IsReady(now, base time.Duration) bool {
	return now-e.LastMove >= e.MoveDelay(base)
}

// DetectionRange - радиус обнаружения по тиру. Босс им не пользуется (0).
func (e *Enemy) DetectionRange(base int) int {
	switch e.Tier {
	case TierNormal:
		return base
	case TierElite:
		return base * 2
	}
	return 0
}

// NoticePlayer выставляет липкий aggro, если игрок в радиусе
func (e *Enemy) NoticePlayer(dist, rangeLimit int) {
	if dist <= rangeLimit {
		e.Aggro = true
	}
}

// SetVisual переключает визуальный вариант глифа до момента until
func (e *Enemy) SetVisual(v VisualState, until time.Duration) {
	e.Visual = v
	e.VisualUntil = until
}

// ExpireVisual возвращает базовый глиф, если таймер истек. true - если что-то изменилось.
func (e *Enemy) ExpireVisual(now time.Duration) bool {
	if e.Visual != VisualBase && now >= e.VisualUntil {
		e.Visual = VisualBase
		return true
	}
	return false
}

// BreakContact сбрасывает цикл ближнего боя (следующее касание снова с замахом)
func (e *Enemy) BreakContact() {
	e.Contact = ContactNone
	e.ContactSince = 0
}
