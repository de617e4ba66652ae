package collector

import (
	"context"
	"math"

	"github.com/prabalesh/barstat/internal/models"
)

const (
	DefaultMixerDevice  = "default"
	DefaultMixerControl = "Master"
)

// MixerControl is the playback state of one simple mixer control, taken
// from its first (mono/front-left) channel.
type MixerControl struct {
	Name              string
	Min, Max          int64
	Volume            int64
	HasPlaybackSwitch bool
	// SwitchOn is the raw switch value: on means sound plays.
	SwitchOn bool
}

// Mixer looks up simple mixer controls by name. found is false when the
// mixer has no such control or could not be opened.
type Mixer interface {
	Control(ctx context.Context, name string) (control MixerControl, found bool)
}

type VolumeReader struct {
	mixer   Mixer
	control string
	diag    Diagnostics
}

func NewVolumeReader(mixer Mixer, control string, diag Diagnostics) *VolumeReader {
	if control == "" {
		control = DefaultMixerControl
	}
	return &VolumeReader{mixer: mixer, control: control, diag: diag.Named("volume")}
}

func (v *VolumeReader) ReadVolume(ctx context.Context) models.VolumeInfo {
	control, found := v.mixer.Control(ctx, v.control)
	if !found {
		v.diag.Command("mixer control not found", v.control, nil)
		return models.VolumeInfo{VolumePercent: models.VolumeUnavailable}
	}

	return models.VolumeInfo{
		VolumePercent: volumePercent(control.Volume, control.Max),
		IsMuted:       control.HasPlaybackSwitch && !control.SwitchOn,
	}
}

func volumePercent(level, limit int64) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Round(float64(level) / float64(limit) * 100))
}
