package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	const name = "SNAKE_TEST_ENV_INT"
	defer os.Unsetenv(name)

	require.Equal(t, 7, getEnvInt(name, 7))

	os.Setenv(name, "42")
	require.Equal(t, 42, getEnvInt(name, 7))

	os.Setenv(name, "lots")
	require.Equal(t, 7, getEnvInt(name, 7))
}
