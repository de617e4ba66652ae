package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/prabalesh/barstat/internal/models"
	"github.com/stretchr/testify/assert"
)

const amixerMono = `Simple mixer control 'Master',0
  Capabilities: pvolume pvolume-joined pswitch pswitch-joined
  Playback channels: Mono
  Limits: Playback 0 - 87
  Mono: Playback 60 [69%] [-20.25dB] [on]
`

const amixerStereoMuted = `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch pswitch-joined
  Playback channels: Front Left - Front Right
  Limits: Playback 0 - 65536
  Mono:
  Front Left: Playback 32768 [50%] [off]
  Front Right: Playback 65536 [100%] [off]
`

const amixerNoSwitch = `Simple mixer control 'Master',0
  Capabilities: volume volume-joined
  Playback channels: Mono
  Capture channels: Mono
  Limits: 0 - 31
  Mono: 31 [100%]
`

const amixerCommonSwitchOff = `Simple mixer control 'Master',0
  Capabilities: volume volume-joined switch switch-joined
  Playback channels: Mono
  Capture channels: Mono
  Limits: 0 - 31
  Mono: 12 [39%] [-28.50dB] [off]
`

const amixerPlaybackAndCapture = `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch cvolume cswitch
  Playback channels: Front Left - Front Right
  Capture channels: Front Left - Front Right
  Limits: Playback 0 - 87 Capture 0 - 63
  Front Left: Playback 60 [69%] [-20.25dB] [on] Capture 10 [16%] [off]
  Front Right: Playback 60 [69%] [-20.25dB] [on] Capture 10 [16%] [off]
`

// stubMixer serves fixed controls by name.
type stubMixer struct {
	controls map[string]MixerControl
}

func (s *stubMixer) Control(_ context.Context, name string) (MixerControl, bool) {
	control, ok := s.controls[name]
	return control, ok
}

func TestVolumeReaderMissingControl(t *testing.T) {
	diag, logs := observedDiagnostics()
	mixer := &stubMixer{controls: map[string]MixerControl{"PCM": {Max: 100, Volume: 50}}}

	info := NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background())

	assert.Equal(t, models.VolumeInfo{VolumePercent: 999, IsMuted: false}, info)
	assert.False(t, info.Available())
	assert.Equal(t, 1, badMessages(logs))
}

func TestVolumeReaderMuteSemantics(t *testing.T) {
	tests := []struct {
		name    string
		control MixerControl
		want    models.VolumeInfo
	}{
		{
			name:    "switch on plays sound",
			control: MixerControl{Max: 87, Volume: 60, HasPlaybackSwitch: true, SwitchOn: true},
			want:    models.VolumeInfo{VolumePercent: 69, IsMuted: false},
		},
		{
			name:    "switch off is muted",
			control: MixerControl{Max: 87, Volume: 60, HasPlaybackSwitch: true, SwitchOn: false},
			want:    models.VolumeInfo{VolumePercent: 69, IsMuted: true},
		},
		{
			name:    "no switch is never muted",
			control: MixerControl{Max: 100, Volume: 0},
			want:    models.VolumeInfo{VolumePercent: 0, IsMuted: false},
		},
		{
			name:    "zero range",
			control: MixerControl{Max: 0, Volume: 10, HasPlaybackSwitch: true, SwitchOn: true},
			want:    models.VolumeInfo{VolumePercent: 0, IsMuted: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag, _ := observedDiagnostics()
			mixer := &stubMixer{controls: map[string]MixerControl{"Master": tt.control}}
			assert.Equal(t, tt.want, NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background()))
		})
	}
}

func TestParseAmixerControl(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   MixerControl
	}{
		{
			name:   "mono",
			output: amixerMono,
			want:   MixerControl{Name: "Master", Min: 0, Max: 87, Volume: 60, HasPlaybackSwitch: true, SwitchOn: true},
		},
		{
			name:   "stereo muted uses first channel",
			output: amixerStereoMuted,
			want:   MixerControl{Name: "Master", Min: 0, Max: 65536, Volume: 32768, HasPlaybackSwitch: true, SwitchOn: false},
		},
		{
			name:   "joined volume without switch",
			output: amixerNoSwitch,
			want:   MixerControl{Name: "Master", Min: 0, Max: 31, Volume: 31, HasPlaybackSwitch: false, SwitchOn: true},
		},
		{
			name:   "common volume with switch off",
			output: amixerCommonSwitchOff,
			want:   MixerControl{Name: "Master", Min: 0, Max: 31, Volume: 12, HasPlaybackSwitch: true, SwitchOn: false},
		},
		{
			name:   "playback and capture on one line",
			output: amixerPlaybackAndCapture,
			want:   MixerControl{Name: "Master", Min: 0, Max: 87, Volume: 60, HasPlaybackSwitch: true, SwitchOn: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			control, found := parseAmixerControl([]byte(tt.output))
			assert.True(t, found)
			assert.Equal(t, tt.want, control)
		})
	}
}

func TestParseLimits(t *testing.T) {
	tests := []struct {
		value     string
		low, high int64
	}{
		{"0 - 31", 0, 31},
		{"Playback 0 - 87", 0, 87},
		{"Playback 0 - 87 Capture 0 - 63", 0, 87},
		{"Playback -10 - 10", -10, 10},
		{"Capture 0 - 63", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			low, high := parseLimits(tt.value)
			assert.Equal(t, tt.low, low)
			assert.Equal(t, tt.high, high)
		})
	}
}

func TestAmixerCommonVolume(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   models.VolumeInfo
	}{
		{
			name:   "no switch",
			output: amixerNoSwitch,
			want:   models.VolumeInfo{VolumePercent: 100, IsMuted: false},
		},
		{
			name:   "switch on",
			output: "Simple mixer control 'Master',0\n  Capabilities: volume volume-joined switch switch-joined\n  Limits: 0 - 31\n  Mono: 31 [100%] [0.00dB] [on]\n",
			want:   models.VolumeInfo{VolumePercent: 100, IsMuted: false},
		},
		{
			name:   "switch off",
			output: amixerCommonSwitchOff,
			want:   models.VolumeInfo{VolumePercent: 39, IsMuted: true},
		},
		{
			name:   "capture switch does not mute playback",
			output: amixerPlaybackAndCapture,
			want:   models.VolumeInfo{VolumePercent: 69, IsMuted: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{outputs: map[string]string{"amixer -D default sget Master": tt.output}}
			diag, logs := observedDiagnostics()

			mixer := NewAmixerMixer(runner, diag, "amixer", "default")
			info := NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background())

			assert.Equal(t, tt.want, info)
			assert.Zero(t, badMessages(logs))
		})
	}
}

func TestParseAmixerControlEmpty(t *testing.T) {
	_, found := parseAmixerControl(nil)
	assert.False(t, found)
}

func TestAmixerVolumeEndToEnd(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"amixer -D default sget Master": amixerStereoMuted,
	}}
	diag, _ := observedDiagnostics()

	mixer := NewAmixerMixer(runner, diag, "amixer", "default")
	info := NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background())

	assert.Equal(t, models.VolumeInfo{VolumePercent: 50, IsMuted: true}, info)
}

func TestAmixerMissingControl(t *testing.T) {
	// amixer: Unable to find simple control 'Master',0 (stderr, exit 1)
	runner := &fakeRunner{outputs: map[string]string{}}
	diag, logs := observedDiagnostics()

	mixer := NewAmixerMixer(runner, diag, "amixer", "default")
	info := NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background())

	assert.Equal(t, models.VolumeInfo{VolumePercent: models.VolumeUnavailable}, info)
	assert.Equal(t, 2, badMessages(logs))
}

func TestAmixerNotInstalled(t *testing.T) {
	runner := &fakeRunner{launchErr: errors.New("executable file not found in $PATH")}
	diag, _ := observedDiagnostics()

	mixer := NewAmixerMixer(runner, diag, "amixer", "default")
	info := NewVolumeReader(mixer, "Master", diag).ReadVolume(context.Background())

	assert.Equal(t, models.VolumeUnavailable, info.VolumePercent)
	assert.False(t, info.IsMuted)
}
