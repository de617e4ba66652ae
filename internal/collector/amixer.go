package collector

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
)

const DefaultMixerCommand = "amixer"

// AmixerMixer reads simple mixer controls through `amixer sget`.
type AmixerMixer struct {
	runner  CommandRunner
	diag    Diagnostics
	command string
	device  string
}

func NewAmixerMixer(runner CommandRunner, diag Diagnostics, command, device string) *AmixerMixer {
	if runner == nil {
		runner = NewExecRunner(DefaultCommandTimeout)
	}
	if command == "" {
		command = DefaultMixerCommand
	}
	if device == "" {
		device = DefaultMixerDevice
	}
	return &AmixerMixer{runner: runner, diag: diag.Named("mixer"), command: command, device: device}
}

func (m *AmixerMixer) Control(ctx context.Context, name string) (MixerControl, bool) {
	args := []string{"-D", m.device, "sget", name}

	// amixer exits non-zero with no stdout when the control is missing,
	// so any error here means there is nothing to parse.
	output, err := m.runner.Run(ctx, m.command, args...)
	if err != nil {
		m.diag.Command("could not query mixer", commandLine(m.command, args...), err)
		return MixerControl{}, false
	}
	return parseAmixerControl(output)
}

// parseAmixerControl reads the labeled fields of one control:
//
//	Simple mixer control 'Master',0
//	  Capabilities: pvolume pvolume-joined pswitch pswitch-joined
//	  Playback channels: Mono
//	  Limits: Playback 0 - 87
//	  Mono: Playback 60 [69%] [-20.25dB] [on]
func parseAmixerControl(output []byte) (MixerControl, bool) {
	var (
		control    MixerControl
		found      bool
		sawChannel bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if rest, ok := strings.CutPrefix(line, "Simple mixer control "); ok {
			if found {
				break
			}
			found = true
			control.Name = controlName(rest)
			continue
		}
		if !found {
			continue
		}

		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch label {
		case "Capabilities":
			for _, capability := range strings.Fields(value) {
				if capability == "pswitch" || capability == "switch" {
					control.HasPlaybackSwitch = true
				}
			}
		case "Limits":
			control.Min, control.Max = parseLimits(value)
		case "Playback channels", "Capture channels":
		default:
			if sawChannel {
				continue
			}
			if volume, switchOn, ok := parseChannel(value); ok {
				control.Volume = volume
				control.SwitchOn = switchOn
				sawChannel = true
			}
		}
	}
	return control, found
}

// controlName extracts Master from "'Master',0".
func controlName(field string) string {
	name, _, _ := strings.Cut(field, ",")
	return strings.Trim(name, "'")
}

// parseLimits reads the playback range from "0 - 87", "Playback 0 - 87"
// or "Playback 0 - 87 Capture 0 - 63".
func parseLimits(value string) (int64, int64) {
	tokens := strings.Fields(value)
	if len(tokens) > 0 && tokens[0] == "Playback" {
		tokens = tokens[1:]
	}
	if len(tokens) < 3 || tokens[1] != "-" {
		return 0, 0
	}
	low, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return 0, 0
	}
	high, err := strconv.ParseInt(tokens[2], 10, 64)
	if err != nil {
		return 0, 0
	}
	return low, high
}

// parseChannel reads the playback part of a channel line, either
// "Playback 60 [69%] [-20.25dB] [on] Capture 10 [16%] [on]" or, for
// controls with a common volume, "31 [100%] [0.00dB] [on]". Channels with
// no switch have no [on]/[off] token and are reported as on.
func parseChannel(value string) (int64, bool, bool) {
	tokens := strings.Fields(value)
	if len(tokens) > 0 && tokens[0] == "Playback" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return 0, false, false
	}
	volume, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return 0, false, false
	}

	switchOn := true
	for _, token := range tokens[1:] {
		if token == "Capture" {
			break
		}
		switch token {
		case "[off]":
			switchOn = false
		case "[on]":
			switchOn = true
		}
	}
	return volume, switchOn, true
}
