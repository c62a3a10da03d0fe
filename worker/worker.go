// Package worker provides the actual running of a game. A Worker owns the
// game state, steps it on every scheduler tick and applies commands from the
// keyboard and the control surface in between ticks.
package worker

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrStopped is returned by calls made after Run has returned.
	ErrStopped = errors.New("worker: game loop stopped")
	// ErrRunning is returned when Run is called a second time.
	ErrRunning = errors.New("worker: game loop already running")
	// ErrGameInProgress is returned by ChangeDifficultyBetweenGames while a
	// game is being played.
	ErrGameInProgress = errors.New("worker: game in progress")
)

// Worker runs a single game. All changes to the game happen on the goroutine
// that called Run, the exported methods hand their work to it.
type Worker struct {
	// NewTicker builds the tick timer. Defaults to NewTimeTicker.
	NewTicker func(time.Duration) Ticker
	// Rand places food. Defaults to a time seeded source.
	Rand rules.Rand
	// NewID names each game. Defaults to a random uuid.
	NewID func() string

	inbox chan interface{}
	done  chan struct{}

	runMu   sync.Mutex
	started bool

	subMu       sync.Mutex
	subscribers map[int]func(rules.GameState)
	nextSub     int

	// owned by the Run goroutine
	state     rules.GameState
	scheduler Scheduler
}

// New returns a Worker whose first game is played at difficulty d.
func New(d rules.Difficulty) *Worker {
	return &Worker{
		NewTicker:   NewTimeTicker,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		NewID:       func() string { return uuid.NewV4().String() },
		inbox:       make(chan interface{}),
		done:        make(chan struct{}),
		subscribers: map[int]func(rules.GameState){},
		state:       rules.SetDifficulty(rules.NewGame(), d),
	}
}

type keyCmd struct {
	key   string
	reply chan bool
}

type directionCmd struct {
	direction rules.Direction
	reply     chan bool
}

type resetCmd struct {
	reply chan rules.GameState
}

type difficultyCmd struct {
	difficulty  rules.Difficulty
	requireOver bool
	reply       chan difficultyReply
}

type difficultyReply struct {
	state rules.GameState
	err   error
}

type snapshotCmd struct {
	reply chan rules.GameState
}

// Run starts the first game and processes ticks and commands until ctx is
// done. The tick timer is always stopped on return.
func (w *Worker) Run(ctx context.Context) error {
	w.runMu.Lock()
	if w.started {
		w.runMu.Unlock()
		return ErrRunning
	}
	w.started = true
	w.runMu.Unlock()

	return w.run(ctx)
}

func (w *Worker) run(ctx context.Context) error {
	defer close(w.done)

	w.scheduler.NewTicker = w.NewTicker
	defer w.scheduler.Stop()

	w.state.ID = w.NewID()
	log.WithFields(log.Fields{
		"GameID":     w.state.ID,
		"Difficulty": w.state.Difficulty,
	}).Info("game started")
	w.restart()
	w.publish()

	for {
		select {
		case <-ctx.Done():
			log.WithField("GameID", w.state.ID).Info("game loop stopping")
			return ctx.Err()
		case <-w.scheduler.C():
			w.tick()
		case cmd := <-w.inbox:
			w.handleCommand(cmd)
		}
	}
}

func (w *Worker) tick() {
	defer instrument("Tick")()

	prev := w.state
	w.state = rules.GameTick(prev, w.Rand)
	ticksTotal.Inc()
	if w.state.Score > prev.Score {
		foodEaten.Inc()
	}
	if w.state.GameOver && !prev.GameOver {
		cause := ""
		if w.state.Death != nil {
			cause = w.state.Death.Cause
		}
		gamesOver.WithLabelValues(cause).Inc()
		w.scheduler.Stop()
		log.WithFields(log.Fields{
			"GameID": w.state.ID,
			"Turn":   w.state.Turn,
			"Score":  w.state.Score,
		}).Info("scheduler stopped")
	}
	w.publish()
}

func (w *Worker) handleCommand(cmd interface{}) {
	switch c := cmd.(type) {
	case keyCmd:
		defer instrument("Key")()
		next, ok := rules.ApplyKey(w.state, c.key)
		w.applyInput(next, ok)
		c.reply <- ok
	case directionCmd:
		defer instrument("Direction")()
		next, ok := rules.ApplyDirection(w.state, c.direction)
		w.applyInput(next, ok)
		c.reply <- ok
	case resetCmd:
		defer instrument("Reset")()
		w.state = rules.Reset(w.state)
		w.state.ID = w.NewID()
		log.WithFields(log.Fields{
			"GameID":     w.state.ID,
			"Difficulty": w.state.Difficulty,
		}).Info("game reset")
		w.restart()
		w.publish()
		c.reply <- w.state.Clone()
	case difficultyCmd:
		defer instrument("Difficulty")()
		if c.requireOver && !w.state.GameOver {
			c.reply <- difficultyReply{state: w.state.Clone(), err: ErrGameInProgress}
			return
		}
		w.state = rules.SetDifficulty(w.state, c.difficulty)
		log.WithFields(log.Fields{
			"GameID":     w.state.ID,
			"Difficulty": c.difficulty,
		}).Info("difficulty changed")
		if !w.state.GameOver {
			w.restart()
		}
		w.publish()
		c.reply <- difficultyReply{state: w.state.Clone()}
	case snapshotCmd:
		c.reply <- w.state.Clone()
	default:
		log.Errorf("worker: unknown command %T", cmd)
	}
}

func (w *Worker) applyInput(next rules.GameState, ok bool) {
	if !ok {
		return
	}
	w.state = next
	w.publish()
}

// restart replaces the tick timer with one at the current difficulty.
func (w *Worker) restart() {
	interval := w.state.Difficulty.TickInterval()
	w.scheduler.Start(interval)
	restarts.WithLabelValues(string(w.state.Difficulty)).Inc()
	log.WithFields(log.Fields{
		"GameID":   w.state.ID,
		"Interval": interval,
	}).Debug("scheduler started")
}

// Subscribe registers fn to receive a copy of the game after every change.
// fn is called on the game loop and must not block. The returned func
// removes the subscription.
func (w *Worker) Subscribe(fn func(rules.GameState)) (unsubscribe func()) {
	w.subMu.Lock()
	defer w.subMu.Unlock()

	id := w.nextSub
	w.nextSub++
	w.subscribers[id] = fn
	return func() {
		w.subMu.Lock()
		defer w.subMu.Unlock()
		delete(w.subscribers, id)
	}
}

func (w *Worker) publish() {
	w.subMu.Lock()
	fns := make([]func(rules.GameState), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		fns = append(fns, fn)
	}
	w.subMu.Unlock()

	for _, fn := range fns {
		fn(w.state.Clone())
	}
}

// Key steers the snake with an arrow key name. It reports whether the key
// changed the direction.
func (w *Worker) Key(ctx context.Context, key string) (bool, error) {
	reply := make(chan bool, 1)
	if err := w.send(ctx, keyCmd{key: key, reply: reply}); err != nil {
		return false, err
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Steer is Key for callers that already have a direction, such as the api
// after it has validated the key name.
func (w *Worker) Steer(ctx context.Context, d rules.Direction) (bool, error) {
	reply := make(chan bool, 1)
	if err := w.send(ctx, directionCmd{direction: d, reply: reply}); err != nil {
		return false, err
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Reset starts a new game at the current difficulty.
func (w *Worker) Reset(ctx context.Context) (rules.GameState, error) {
	reply := make(chan rules.GameState, 1)
	if err := w.send(ctx, resetCmd{reply: reply}); err != nil {
		return rules.GameState{}, err
	}
	return w.wait(ctx, reply)
}

// ChangeDifficulty sets the difficulty. A game in progress switches to the
// new tick rate straight away; callers wanting changes only between games
// must check GameOver themselves.
func (w *Worker) ChangeDifficulty(ctx context.Context, d rules.Difficulty) (rules.GameState, error) {
	return w.changeDifficulty(ctx, d, false)
}

// ChangeDifficultyBetweenGames sets the difficulty only when the current game
// is over and returns ErrGameInProgress otherwise. The check and the change
// happen in one step of the game loop.
func (w *Worker) ChangeDifficultyBetweenGames(ctx context.Context, d rules.Difficulty) (rules.GameState, error) {
	return w.changeDifficulty(ctx, d, true)
}

func (w *Worker) changeDifficulty(ctx context.Context, d rules.Difficulty, requireOver bool) (rules.GameState, error) {
	reply := make(chan difficultyReply, 1)
	cmd := difficultyCmd{difficulty: d, requireOver: requireOver, reply: reply}
	if err := w.send(ctx, cmd); err != nil {
		return rules.GameState{}, err
	}
	select {
	case r := <-reply:
		return r.state, r.err
	case <-ctx.Done():
		return rules.GameState{}, ctx.Err()
	}
}

// Snapshot returns a copy of the current game.
func (w *Worker) Snapshot(ctx context.Context) (rules.GameState, error) {
	reply := make(chan rules.GameState, 1)
	if err := w.send(ctx, snapshotCmd{reply: reply}); err != nil {
		return rules.GameState{}, err
	}
	return w.wait(ctx, reply)
}

// Done is closed once Run has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) send(ctx context.Context, cmd interface{}) error {
	select {
	case w.inbox <- cmd:
		return nil
	case <-w.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) wait(ctx context.Context, reply <-chan rules.GameState) (rules.GameState, error) {
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return rules.GameState{}, ctx.Err()
	}
}
