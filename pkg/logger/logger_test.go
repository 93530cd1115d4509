package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.WithStr("request_id", "abc").Info().Int("id", 2).Msg("stock incrementado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "stock incrementado", entry["message"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.EqualValues(t, 2, entry["id"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "WARN", Out: &buf})

	log.Info().Msg("no aparece")
	log.Warn().Msg("aparece")

	out := buf.String()
	assert.NotContains(t, out, "no aparece")
	assert.Contains(t, out, "aparece")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Out: &buf})

	log.Debug().Msg("debug")
	log.Info().Msg("info")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("descartado") })
}
