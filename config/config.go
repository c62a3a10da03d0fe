package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// api and the websocket stream.
var (
	CommandRate  = rate.Limit(getEnvInt("COMMAND_RPS", 50))
	CommandBurst = getEnvInt("COMMAND_BURST", 10)
	MaxConns     = getEnvInt("MAX_CONNS", 64)
	SocketBuffer = getEnvInt("SOCKET_BUFFER", 16)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
