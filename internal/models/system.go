package models

import "time"

// Snapshot is one full polling cycle across every reader.
type Snapshot struct {
	Batteries     []BatteryInfo `json:"batteries"`
	BatterySource string        `json:"battery_source"`
	Thermal       []ThermalInfo `json:"thermal"`
	Interface     string        `json:"interface"`
	NetSpeed      NetSpeedInfo  `json:"net_speed"`
	Wireless      NetInfo       `json:"wireless"`
	Volume        VolumeInfo    `json:"volume"`
	CollectedAt   time.Time     `json:"collected_at"`
}
