package models

// ThermalInfo is a thermal zone reading in whole degrees Celsius.
// TempC is 0 when the zone could not be read.
type ThermalInfo struct {
	Index int `json:"index"`
	TempC int `json:"temp_c"`
}

// VolumeUnavailable is reported when the mixer control cannot be found.
const VolumeUnavailable = 999

type VolumeInfo struct {
	VolumePercent int  `json:"volume_percent"`
	IsMuted       bool `json:"is_muted"`
}

func (v VolumeInfo) Available() bool {
	return v.VolumePercent != VolumeUnavailable
}
