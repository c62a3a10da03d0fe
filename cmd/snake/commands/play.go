package commands

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	playListen  = ""
	playLogFile = ""

	// playGame and logOutput are swapped out in tests.
	playGame            = play
	logOutput io.Writer = os.Stderr
)

func init() {
	playCmd.Flags().StringVarP(&difficulty, "difficulty", "d", difficulty, "starting difficulty, as one of: [easy, medium, hard]")
	playCmd.Flags().StringVarP(&playListen, "listen", "l", playListen, "also serve the api on this address so others can watch")
	playCmd.Flags().StringVar(&playLogFile, "log-file", playLogFile, "write logs to this file, logs are discarded when empty")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		d, err := rules.ParseDifficulty(difficulty)
		if err != nil {
			log.WithError(err).Fatal("invalid difficulty")
		}

		if err := runPlay(d, playLogFile); err != nil {
			log.WithError(err).Error("game ended with an error")
			os.Exit(1)
		}
	},
}

// runPlay plays a game with logs redirected to logFile. Logs go back to
// logOutput before it returns so the caller can report the error.
func runPlay(d rules.Difficulty, logFile string) error {
	closeLog, err := redirectLog(logFile)
	if err != nil {
		return errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	defer func() {
		closeLog()
		log.SetOutput(logOutput)
	}()

	return playGame(d)
}

// redirectLog sends logs to path, the terminal belongs to the game while
// it is running.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}

func play(d rules.Difficulty) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.New(d)

	frames := make(chan rules.GameState, 1)
	unsubscribe := w.Subscribe(func(s rules.GameState) { latest(frames, s) })
	defer unsubscribe()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	events, detach := attachKeyboard()
	defer detach()

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	if playListen != "" {
		srv := api.New(playListen, w)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).WithField("listen", playListen).Error("api server failed")
			}
		}()
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("api server did not shut down cleanly")
			}
		}()
	}

	current, err := w.Snapshot(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case current = <-frames:
			if err := draw(current); err != nil {
				return err
			}
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return errors.Wrap(ev.Err, "terminal error")
			}
			if ev.Type == termbox.EventResize {
				if err := draw(current); err != nil {
					return err
				}
				continue
			}
			quit, err := handleKey(ctx, w, current, keyName(ev))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case err := <-runErr:
			return err
		}
	}
}

// latest replaces whatever frame is waiting in frames with s. Only the game
// loop sends on frames so the second send always succeeds.
func latest(frames chan rules.GameState, s rules.GameState) {
	select {
	case frames <- s:
		return
	default:
	}
	select {
	case <-frames:
	default:
	}
	select {
	case frames <- s:
	default:
	}
}
