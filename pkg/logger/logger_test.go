package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&buf, "debug", "json")

	log.WithField("emergency_id", 42).Debug("assigned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "assigned", entry["msg"])
	assert.Equal(t, float64(42), entry["emergency_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := newWithOutput(&bytes.Buffer{}, "loud", "json")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&buf, "info", "text")

	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
