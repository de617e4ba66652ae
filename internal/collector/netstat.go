package collector

import (
	"context"
	"path/filepath"

	"github.com/prabalesh/barstat/internal/models"
)

// NetCounterReader reads the cumulative byte counters of an interface.
type NetCounterReader struct {
	dir  string
	diag Diagnostics
}

func NewNetCounterReader(netDir string, diag Diagnostics) *NetCounterReader {
	if netDir == "" {
		netDir = DefaultNetDir
	}
	return &NetCounterReader{dir: netDir, diag: diag.Named("network")}
}

// ReadNetSpeed reads rx and tx independently; a failure on one leaves
// that counter at 0 without affecting the other.
func (n *NetCounterReader) ReadNetSpeed(_ context.Context, ifname string) models.NetSpeedInfo {
	var info models.NetSpeedInfo
	statsDir := filepath.Join(n.dir, filepath.Base(ifname), "statistics")

	rxPath := filepath.Join(statsDir, "rx_bytes")
	if rx, err := readSysfsUint(rxPath); err != nil {
		n.diag.Path("could not read interface speed", rxPath, err)
	} else {
		info.DownBytes = rx
	}

	txPath := filepath.Join(statsDir, "tx_bytes")
	if tx, err := readSysfsUint(txPath); err != nil {
		n.diag.Path("could not read interface speed", txPath, err)
	} else {
		info.UpBytes = tx
	}

	return info
}
