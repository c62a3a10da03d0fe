package commands

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func swapPlay(game func(rules.Difficulty) error) *bytes.Buffer {
	out := &bytes.Buffer{}
	playGame, logOutput = game, out
	log.SetOutput(out)
	return out
}

func restorePlay(prevGame func(rules.Difficulty) error, prevOutput io.Writer) {
	playGame, logOutput = prevGame, prevOutput
	log.SetOutput(os.Stderr)
}

func TestRunPlayReportsErrorAfterDiscardingLogs(t *testing.T) {
	defer restorePlay(playGame, logOutput)
	out := swapPlay(func(d rules.Difficulty) error {
		log.Info("logged while the terminal belongs to the game")
		return errors.New("unable to start terminal: open /dev/tty: no such device")
	})

	err := runPlay(rules.DifficultyHard, "")
	require.Error(t, err)
	require.Empty(t, out.String())

	log.WithError(err).Error("game ended with an error")
	require.Contains(t, out.String(), "unable to start terminal")
	require.Contains(t, out.String(), "game ended with an error")
}

func TestRunPlayWritesLogFile(t *testing.T) {
	defer restorePlay(playGame, logOutput)
	dir, err := ioutil.TempDir("", "snake")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "snake.log")

	var played rules.Difficulty
	out := swapPlay(func(d rules.Difficulty) error {
		played = d
		log.Info("game started")
		return nil
	})

	require.NoError(t, runPlay(rules.DifficultyEasy, path))
	require.Equal(t, rules.DifficultyEasy, played)
	require.Empty(t, out.String())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "game started")

	log.Info("after the game")
	require.Contains(t, out.String(), "after the game")
}

func TestRunPlayBadLogFile(t *testing.T) {
	defer restorePlay(playGame, logOutput)
	played := false
	swapPlay(func(d rules.Difficulty) error {
		played = true
		return nil
	})

	err := runPlay(rules.DifficultyMedium, filepath.Join("does-not-exist", "nested", "snake.log"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to open log file")
	require.False(t, played)
}
