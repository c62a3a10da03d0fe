package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveListen = ":3005"

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", serveListen, "api address to listen on")
	serveCmd.Flags().StringVarP(&difficulty, "difficulty", "d", difficulty, "starting difficulty, as one of: [easy, medium, hard]")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "runs a game driven only by the http api",
	Run: func(c *cobra.Command, args []string) {
		d, err := rules.ParseDifficulty(difficulty)
		if err != nil {
			log.WithError(err).Fatal("invalid difficulty")
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			s := <-sig
			log.WithField("signal", s).Info("shutting down")
			cancel()
		}()

		w := worker.New(d)
		go func() {
			if err := w.Run(ctx); err != nil && err != context.Canceled {
				log.WithError(err).Error("game loop failed")
			}
			cancel()
		}()

		srv := api.New(serveListen, w)
		go func() {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("api server did not shut down cleanly")
			}
		}()

		if err := srv.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", serveListen).
				Fatal("api server failed")
		}
		<-w.Done()
	},
}
