// Package terminal - внешний коллаборатор симуляции: клавиатура и отрисовка снимка через tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"haste/internal/domain"
	"haste/pkg/api"
)

// inputBuffer - сколько нажатий копится между опросами; лишние отбрасываются
const inputBuffer = 8

// canvas - часть tcell.Screen, которой пользуется отрисовка
type canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Terminal реализует engine.InputSource и engine.Renderer
type Terminal struct {
	screen tcell.Screen
	events chan domain.InputEvent
}

// Open захватывает терминал и запускает чтение клавиатуры
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan domain.InputEvent, inputBuffer),
	}
	go t.pollLoop()
	return t, nil
}

// Close возвращает терминал в исходное состояние
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Poll - неблокирующий опрос. Очередь вычерпывается целиком: старые нажатия
// не доживают до следующих тиков, берется последнее, выход важнее всего.
func (t *Terminal) Poll() domain.InputEvent {
	last := domain.InputNone
	for {
		select {
		case ev := <-t.events:
			if last != domain.InputQuit {
				last = ev
			}
		default:
			return last
		}
	}
}

// Render рисует снимок и статусную строку
func (t *Terminal) Render(snap api.Snapshot) {
	draw(t.screen, snap)
	t.screen.Show()
}

func (t *Terminal) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil { // экран закрыт
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			in := KeyToInput(ev.Key(), ev.Rune())
			if in == domain.InputNone {
				continue
			}
			select {
			case t.events <- in:
			default:
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// KeyToInput переводит клавишу в событие. Esc и Ctrl+C работают как выход.
func KeyToInput(key tcell.Key, r rune) domain.InputEvent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.InputQuit
	case tcell.KeyRune:
		return domain.ParseKey(r)
	}
	return domain.InputNone
}
