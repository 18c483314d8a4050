package types

import (
	"fmt"
	"strconv"
)

// Handle - 64-битная ссылка на слот реестра (арены) сущностей.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Kind - вид реестра (враги, пули)
//   - Generation - версия слота; растет при каждом повторном занятии слота
//   - Index - индекс слота в массиве фиксированной емкости
//
// Ссылка, выданная до освобождения слота, после его повторного занятия
// становится устаревшей: поколение не совпадет.
type Handle uint64

// NilHandle - нулевая ссылка (слот не назначен).
const NilHandle Handle = 0

// Kind - вид сущности, на которую указывает Handle.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindEnemy
	KindBullet
)

var kindToString = map[Kind]string{
	KindEnemy:  "ENEMY",
	KindBullet: "BULLET",
}

// String возвращает строковое представление (для логов и дебага)
func (k Kind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Конфигурация битов Handle.
const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackHandle собирает Handle из составных частей.
//
// Функция не выполняет проверок диапазонов и предполагает,
// что входные данные валидны.
func PackHandle(kind Kind, gen uint16, index uint32) Handle {
	return Handle(
		(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота.
func (h Handle) Index() uint32 {
	return uint32(h & maskIndex)
}

// Generation возвращает поколение слота.
func (h Handle) Generation() uint16 {
	return uint16((h >> shiftGen) & maskGen)
}

// Kind возвращает вид сущности.
func (h Handle) Kind() Kind {
	return Kind((h >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли ссылка нулевой.
func (h Handle) IsNil() bool {
	return h == NilHandle
}

// String предназначен для логирования и отладки.
func (h Handle) String() string {
	if h.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s gen=%d idx=%d]", h.Kind(), h.Generation(), h.Index())
}

// MarshalJSON сериализует Handle как строку, чтобы не терять точность uint64.
func (h Handle) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(h), 10) + `"`), nil
}

// UnmarshalJSON поддерживает как строковое, так и числовое представление.
func (h *Handle) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*h = NilHandle
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*h = Handle(v)
	return nil
}
