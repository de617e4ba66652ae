package collector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prabalesh/barstat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetCounterReader(t *testing.T) {
	root := t.TempDir()
	writeSyntheticFile(t, root, "wlan0/statistics/rx_bytes", "123456\n")
	writeSyntheticFile(t, root, "wlan0/statistics/tx_bytes", "18446744073709551000\n")

	diag, logs := observedDiagnostics()
	info := NewNetCounterReader(root, diag).ReadNetSpeed(context.Background(), "wlan0")

	assert.Equal(t, models.NetSpeedInfo{DownBytes: 123456, UpBytes: 18446744073709551000}, info)
	assert.Zero(t, badMessages(logs))
}

func TestNetCounterReaderMissingTx(t *testing.T) {
	root := t.TempDir()
	writeSyntheticFile(t, root, "eth0/statistics/rx_bytes", "123456\n")

	diag, logs := observedDiagnostics()
	info := NewNetCounterReader(root, diag).ReadNetSpeed(context.Background(), "eth0")

	assert.Equal(t, uint64(123456), info.DownBytes)
	assert.Zero(t, info.UpBytes)

	entries := logs.FilterMessageSnippet(BadPrefix).All()
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(root, "eth0", "statistics", "tx_bytes"), entries[0].ContextMap()["path"])
}

func TestNetCounterReaderMissingInterface(t *testing.T) {
	diag, logs := observedDiagnostics()
	info := NewNetCounterReader(t.TempDir(), diag).ReadNetSpeed(context.Background(), "wlan9")

	assert.Equal(t, models.NetSpeedInfo{}, info)
	assert.Equal(t, 2, badMessages(logs))
}
