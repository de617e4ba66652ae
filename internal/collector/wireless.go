package collector

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prabalesh/barstat/internal/models"
)

const DefaultWirelessCommand = "iw"

const noSignal = "0"

// WirelessReader reports SSID and signal strength from `iw dev <if> link`.
type WirelessReader struct {
	runner  CommandRunner
	diag    Diagnostics
	command string
}

func NewWirelessReader(runner CommandRunner, diag Diagnostics, command string) *WirelessReader {
	if runner == nil {
		runner = NewExecRunner(DefaultCommandTimeout)
	}
	if command == "" {
		command = DefaultWirelessCommand
	}
	return &WirelessReader{runner: runner, diag: diag.Named("wireless"), command: command}
}

func (w *WirelessReader) ReadNetInfo(ctx context.Context, ifname string) models.NetInfo {
	args := []string{"dev", ifname, "link"}

	output, err := w.runner.Run(ctx, w.command, args...)
	if errors.Is(err, ErrCommandLaunch) {
		w.diag.Command("could not execute link command", commandLine(w.command, args...), err)
		return models.NetInfo{Name: models.NetNameError, SignalLevel: noSignal}
	}
	if err != nil {
		w.diag.Command("link command failed", commandLine(w.command, args...), err)
	}

	return parseLinkOutput(output)
}

// parseLinkOutput scans labeled fields. Output with neither an SSID nor
// a signal line, including empty output, is a link that is down.
func parseLinkOutput(output []byte) models.NetInfo {
	info := models.NetInfo{Name: models.NetNameDown, SignalLevel: noSignal}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if ssid, ok := strings.CutPrefix(line, "SSID:"); ok {
			info.Name = boundName(strings.TrimSpace(ssid))
			continue
		}
		if signal, ok := strings.CutPrefix(line, "signal:"); ok {
			if level, ok := parseSignal(signal); ok {
				info.SignalLevel = level
			}
			continue
		}
		if strings.HasPrefix(line, "Not connected") {
			return models.NetInfo{Name: models.NetNameDown, SignalLevel: noSignal}
		}
	}
	return info
}

// parseSignal takes the first token of "-54 dBm" or "-54.00 dBm" and
// returns its integer part.
func parseSignal(field string) (string, bool) {
	tokens := strings.Fields(field)
	if len(tokens) == 0 {
		return "", false
	}
	whole, _, _ := strings.Cut(tokens[0], ".")
	if _, err := strconv.Atoi(whole); err != nil {
		return "", false
	}
	return whole, true
}

// boundName truncates to MaxNetNameLen bytes without splitting a rune.
func boundName(name string) string {
	if len(name) <= models.MaxNetNameLen {
		return name
	}
	cut := models.MaxNetNameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
