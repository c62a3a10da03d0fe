package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var apiAddr = "http://localhost:3005"

func init() {
	statusCmd.Flags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the api server")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the status of the game served by snake serve",
	Run: func(*cobra.Command, []string) {
		status, err := getStatus(apiAddr)
		if err != nil {
			log.WithError(err).WithField("api", apiAddr).Fatal("unable to get game status")
		}
		spew.Dump(status)
	},
}

func getStatus(addr string) (*api.GameResponse, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/game", addr))
	if err != nil {
		return nil, errors.Wrap(err, "error while getting status")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	gr := &api.GameResponse{}
	if err := json.Unmarshal(data, gr); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal status response")
	}
	return gr, nil
}
