package domain

import "haste/internal/core/types"

// Slot - то, что может лежать в арене: запись с флагом жизни
type Slot[T any] interface {
	*T
	IsAlive() bool
	SetAlive(bool)
}

// Arena - реестр фиксированной емкости. Слот переиспользуется только после того,
// как его обитатель помечен мертвым; компактизации нет, мертвые слоты пропускаются.
type Arena[T any, P Slot[T]] struct {
	kind  types.Kind
	items []T
	gens  []uint16
}

// EnemyRegistry и BulletPool - реестры симуляции
type (
	EnemyRegistry = Arena[Enemy, *Enemy]
	BulletPool    = Arena[Bullet, *Bullet]
)

// NewArena создает арену заданной емкости
func NewArena[T any, P Slot[T]](kind types.Kind, capacity int) *Arena[T, P] {
	return &Arena[T, P]{
		kind:  kind,
		items: make([]T, capacity),
		gens:  make([]uint16, capacity),
	}
}

// NewEnemyRegistry - реестр врагов на MaxEnemies слотов
func NewEnemyRegistry(capacity int) *EnemyRegistry {
	return NewArena[Enemy, *Enemy](types.KindEnemy, capacity)
}

// NewBulletPool - пул пуль
func NewBulletPool(capacity int) *BulletPool {
	return NewArena[Bullet, *Bullet](types.KindBullet, capacity)
}

// Spawn кладет значение в первый свободный слот и помечает его живым.
// Возвращает ссылку и указатель на запись; ok=false, если свободных слотов нет.
func (a *Arena[T, P]) Spawn(v T) (types.Handle, P, bool) {
	for i := range a.items {
		if P(&a.items[i]).IsAlive() {
			continue
		}
		a.gens[i]++
		if a.gens[i] == 0 { // поколение 0 зарезервировано под NilHandle
			a.gens[i] = 1
		}
		a.items[i] = v
		slot := P(&a.items[i])
		slot.SetAlive(true)
		return types.PackHandle(a.kind, a.gens[i], uint32(i)), slot, true
	}
	var zero P
	return types.NilHandle, zero, false
}

// Get возвращает живую запись по ссылке. Устаревшие ссылки не разрешаются.
func (a *Arena[T, P]) Get(h types.Handle) (P, bool) {
	if h.Kind() != a.kind {
		var zero P
		return zero, false
	}
	i := int(h.Index())
	if i >= len(a.items) || a.gens[i] != h.Generation() {
		var zero P
		return zero, false
	}
	slot := P(&a.items[i])
	if !slot.IsAlive() {
		var zero P
		return zero, false
	}
	return slot, true
}

// Kill помечает запись мертвой. Повторный вызов - no-op (false).
func (a *Arena[T, P]) Kill(h types.Handle) bool {
	slot, ok := a.Get(h)
	if !ok {
		return false
	}
	slot.SetAlive(false)
	return true
}

// Each обходит живые записи в порядке индексов
func (a *Arena[T, P]) Each(fn func(P)) {
	for i := range a.items {
		slot := P(&a.items[i])
		if slot.IsAlive() {
			fn(slot)
		}
	}
}

// Alive возвращает количество живых записей
func (a *Arena[T, P]) Alive() int {
	n := 0
	a.Each(func(P) { n++ })
	return n
}

// Cap - емкость арены
func (a *Arena[T, P]) Cap() int {
	return len(a.items)
}

// Reset помечает все слоты мертвыми (начало уровня). Поколения сохраняются,
// поэтому ссылки прошлых уровней остаются недействительными.
func (a *Arena[T, P]) Reset() {
	for i := range a.items {
		P(&a.items[i]).SetAlive(false)
	}
}
