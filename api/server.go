// Package api exposes a running game over http and streams its changes to
// spectators over a websocket.
package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"
)

// Game is the control surface of a running game. *worker.Worker satisfies it.
type Game interface {
	Snapshot(ctx context.Context) (rules.GameState, error)
	Reset(ctx context.Context) (rules.GameState, error)
	ChangeDifficultyBetweenGames(ctx context.Context, d rules.Difficulty) (rules.GameState, error)
	Steer(ctx context.Context, d rules.Direction) (bool, error)
	Subscribe(fn func(rules.GameState)) (unsubscribe func())
}

// Server is the http api for one game.
type Server struct {
	hs       *http.Server
	game     Game
	limiter  *rate.Limiter
	upgrader websocket.Upgrader
}

// GameResponse is a game snapshot plus the board constants a client needs to
// draw it.
type GameResponse struct {
	rules.GameState
	Status       rules.GameStatus `json:"status"`
	GridCount    int              `json:"gridCount"`
	GridSize     int              `json:"gridSize"`
	TickInterval int64            `json:"tickInterval"`
}

// DifficultyRequest is the body of POST /game/difficulty.
type DifficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a new api server listening on addr.
func New(addr string, game Game) *Server {
	s := &Server{
		game:    game,
		limiter: rate.NewLimiter(config.CommandRate, config.CommandBurst),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	router := httprouter.New()
	router.GET("/game", s.status)
	router.POST("/game/reset", s.limited(s.reset))
	router.POST("/game/difficulty", s.limited(s.difficulty))
	router.POST("/game/keys/:key", s.limited(s.key))
	router.GET("/socket", s.socket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves the api until Shutdown is called.
func (s *Server) WaitForExit() error {
	lis, err := net.Listen("tcp", s.hs.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.hs.Addr)
	}
	lis = netutil.LimitListener(lis, config.MaxConns)
	log.WithField("listen", lis.Addr().String()).Info("snake api serving")

	err = s.hs.Serve(lis)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Handler returns the routes of the api without a listener.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// Shutdown stops accepting connections and waits for requests in flight.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) limited(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, errors.New("too many commands"))
			return
		}
		h(w, r, ps)
	}
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state, err := s.game.Snapshot(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewGameResponse(state))
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state, err := s.game.Reset(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewGameResponse(state))
}

func (s *Server) difficulty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := &DifficultyRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid difficulty request"))
		return
	}
	d, err := rules.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state, err := s.game.ChangeDifficultyBetweenGames(r.Context(), d)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewGameResponse(state))
}

func (s *Server) key(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("key")
	d, ok := rules.KeyDirection(key)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown key %q", key))
		return
	}
	applied, err := s.game.Steer(r.Context(), d)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if !applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("error while closing websocket")
		}
	}()

	states := make(chan rules.GameState, config.SocketBuffer)
	closed := make(chan struct{})
	unsubscribe := s.game.Subscribe(func(state rules.GameState) {
		select {
		case states <- state:
		case <-closed:
		default:
			log.WithField("turn", state.Turn).Debug("dropping frame for slow socket")
		}
	})
	defer unsubscribe()

	// Reads only detect the client going away.
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	current, err := s.game.Snapshot(r.Context())
	if err != nil {
		log.WithError(err).Error("unable to get game for socket")
		return
	}
	if err := conn.WriteJSON(NewGameResponse(current)); err != nil {
		return
	}

	for {
		select {
		case state := <-states:
			if err := conn.WriteJSON(NewGameResponse(state)); err != nil {
				log.WithError(err).Debug("socket write failed")
				return
			}
		case <-closed:
			return
		}
	}
}

// NewGameResponse wraps a snapshot with the board constants.
func NewGameResponse(s rules.GameState) GameResponse {
	return GameResponse{
		GameState:    s,
		Status:       s.Status(),
		GridCount:    rules.GridCount,
		GridSize:     rules.GridSize,
		TickInterval: int64(s.Difficulty.TickInterval() / time.Millisecond),
	}
}

func writeGameError(w http.ResponseWriter, err error) {
	switch err {
	case worker.ErrStopped:
		writeError(w, http.StatusServiceUnavailable, err)
		return
	case worker.ErrGameInProgress:
		writeError(w, http.StatusConflict, errors.New("difficulty can only change between games"))
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}
