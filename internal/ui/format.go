package ui

import (
	"fmt"

	"github.com/prabalesh/barstat/internal/models"
)

const notAvailable = "n/a"

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// humanBytes renders a byte quantity with binary units.
func humanBytes(value float64) string {
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", value, byteUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

func formatRate(bytesPerSec float64) string {
	return humanBytes(bytesPerSec) + "/s"
}

func formatBytes(n uint64) string {
	return humanBytes(float64(n))
}

func formatVolume(v models.VolumeInfo) string {
	if !v.Available() {
		return notAvailable
	}
	if v.IsMuted {
		return fmt.Sprintf("%d%% (muted)", v.VolumePercent)
	}
	return fmt.Sprintf("%d%%", v.VolumePercent)
}

func formatSignal(n models.NetInfo) string {
	if !n.Connected() || n.SignalLevel == "" || n.SignalLevel == "0" {
		return notAvailable
	}
	return n.SignalLevel + " dBm"
}

func formatBattery(b models.BatteryInfo) string {
	text := fmt.Sprintf("BAT%d %d%% %s", b.Index, b.Percent, b.Status)
	if b.TimeLeft != "" {
		text += " " + b.TimeLeft
	}
	return text
}
