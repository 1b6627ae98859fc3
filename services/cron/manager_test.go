package cron

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindanaodata/edu-portal/services"
)

func newTestManager() *Manager {
	datasets := services.NewDatasetService(42)
	exports := services.NewExportService(nil, time.Hour)
	return NewManager(datasets, exports)
}

func TestWarmExportCache(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.WarmExportCache())
}

func TestSnapshot(t *testing.T) {
	m := newTestManager()

	snapshot, err := m.Snapshot()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(snapshot, "seed=42 "), snapshot)
	assert.Contains(t, snapshot, "enrollment=600")
	assert.Contains(t, snapshot, "incidents=3000")
	assert.Contains(t, snapshot, "performance=3600")
}

func TestStartStop(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.Start())
	m.Stop()
}
