package models

import "time"

// MaxNetNameLen bounds NetInfo.Name in bytes (the 802.11 SSID limit).
const MaxNetNameLen = 32

const (
	NetNameDown  = "Down"
	NetNameError = "Error"
)

// NetSpeedInfo holds cumulative interface byte counters. Callers derive
// throughput by differencing successive polls, see Rate.
type NetSpeedInfo struct {
	DownBytes uint64 `json:"down_bytes"`
	UpBytes   uint64 `json:"up_bytes"`
}

// NetRate is throughput in bytes per second.
type NetRate struct {
	Down float64 `json:"down"`
	Up   float64 `json:"up"`
}

// Rate computes throughput since prev. A counter that went backwards
// (interface reset, driver reload) reports 0 for that direction.
func (n NetSpeedInfo) Rate(prev NetSpeedInfo, elapsed time.Duration) NetRate {
	if elapsed <= 0 {
		return NetRate{}
	}
	seconds := elapsed.Seconds()

	var rate NetRate
	if n.DownBytes >= prev.DownBytes {
		rate.Down = float64(n.DownBytes-prev.DownBytes) / seconds
	}
	if n.UpBytes >= prev.UpBytes {
		rate.Up = float64(n.UpBytes-prev.UpBytes) / seconds
	}
	return rate
}

// NetInfo describes the wireless link. Name is NetNameDown when there is
// no link and NetNameError when the link could not be queried at all.
type NetInfo struct {
	Name        string `json:"name"`
	SignalLevel string `json:"signal_level"`
}

func (n NetInfo) Connected() bool {
	return n.Name != "" && n.Name != NetNameDown && n.Name != NetNameError
}
