package commands

import (
	"context"
	"sync"

	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
)

var arrowKeys = map[termbox.Key]string{
	termbox.KeyArrowUp:    "ArrowUp",
	termbox.KeyArrowDown:  "ArrowDown",
	termbox.KeyArrowLeft:  "ArrowLeft",
	termbox.KeyArrowRight: "ArrowRight",
}

// keyName returns the browser style name of a key event, or "" for events
// that are not key presses.
func keyName(ev termbox.Event) string {
	if ev.Type != termbox.EventKey {
		return ""
	}
	if name, ok := arrowKeys[ev.Key]; ok {
		return name
	}
	switch ev.Key {
	case termbox.KeyEsc:
		return "Escape"
	case termbox.KeyEnter:
		return "Enter"
	case termbox.KeyCtrlC:
		return "Control+c"
	case termbox.KeySpace:
		return " "
	}
	if ev.Ch != 0 {
		return string(ev.Ch)
	}
	return ""
}

// attachKeyboard starts delivering terminal events. The returned detach
// func stops the delivery and waits for the polling goroutine to exit, it
// must run before termbox is closed.
func attachKeyboard() (events <-chan termbox.Event, detach func()) {
	ch := make(chan termbox.Event)
	done := make(chan struct{})
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			// once detached, keep polling until the interrupt arrives
			select {
			case ch <- ev:
			case <-done:
			}
		}
	}()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			close(done)
			termbox.Interrupt()
			wg.Wait()
		})
	}
}

// controls is the part of the game the terminal keys drive.
type controls interface {
	Key(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context) (rules.GameState, error)
	ChangeDifficulty(ctx context.Context, d rules.Difficulty) (rules.GameState, error)
}

var difficultyKeys = map[string]rules.Difficulty{
	"1": rules.DifficultyEasy,
	"2": rules.DifficultyMedium,
	"3": rules.DifficultyHard,
}

// handleKey applies a key press to the game. current is the last frame that
// was drawn, restart and difficulty keys only work once it shows the game is
// over. It returns true when the player asked to quit.
func handleKey(ctx context.Context, g controls, current rules.GameState, name string) (bool, error) {
	switch name {
	case "Escape", "q", "Control+c":
		return true, nil
	case "":
		return false, nil
	}

	if _, ok := rules.KeyDirection(name); ok {
		_, err := g.Key(ctx, name)
		return false, err
	}

	if !current.GameOver {
		return false, nil
	}
	if name == "r" || name == "Enter" || name == " " {
		_, err := g.Reset(ctx)
		return false, err
	}
	if d, ok := difficultyKeys[name]; ok {
		_, err := g.ChangeDifficulty(ctx, d)
		return false, err
	}
	return false, nil
}
