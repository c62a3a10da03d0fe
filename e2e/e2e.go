// Package e2e drives a served game through its http api the way an external
// control surface would.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/battlesnakeio/snake/api"
	"github.com/pkg/errors"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) gameStatus() (*api.GameResponse, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s/game", c.apiURL))
	if err != nil {
		return nil, err
	}
	return decodeGame(resp)
}

func (c *client) reset() (*api.GameResponse, error) {
	resp, err := c.client.Post(fmt.Sprintf("%s/game/reset", c.apiURL), "application/json", nil)
	if err != nil {
		return nil, err
	}
	return decodeGame(resp)
}

func (c *client) setDifficulty(level string) (int, error) {
	data, err := json.Marshal(&api.DifficultyRequest{Difficulty: level})
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Post(fmt.Sprintf("%s/game/difficulty", c.apiURL), "application/json", bytes.NewBuffer(data))
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, resp.Body.Close()
}

func (c *client) key(name string) (int, error) {
	resp, err := c.client.Post(fmt.Sprintf("%s/game/keys/%s", c.apiURL, name), "application/json", nil)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, resp.Body.Close()
}

func decodeGame(resp *http.Response) (*api.GameResponse, error) {
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}
	gr := &api.GameResponse{}
	if err := json.Unmarshal(data, gr); err != nil {
		return nil, errors.Wrap(err, "unable to decode game")
	}
	return gr, nil
}
