package collector

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/prabalesh/barstat/internal/models"
)

const (
	DefaultBatteryCommand = "acpi"

	// fallbackPercent is reported when the battery command cannot be run
	// at all. It is low enough to be noticed but not low enough to alarm.
	fallbackPercent = 20
)

var DefaultBatteryArgs = []string{"-b"}

// batteryLinePattern matches acpi output such as
//
//	Battery 0: Discharging, 72%, 03:15:00 remaining
//	Battery 0: Full, 100%
var batteryLinePattern = regexp.MustCompile(`^Battery (\d+): ([^,]+), (\d+)%(?:, (\d{2}:\d{2}:\d{2}))?`)

// CommandBattery reads battery state from the text output of a battery
// status command.
type CommandBattery struct {
	runner  CommandRunner
	diag    Diagnostics
	command string
	args    []string
}

func NewCommandBattery(runner CommandRunner, diag Diagnostics, command string, args ...string) *CommandBattery {
	if runner == nil {
		runner = NewExecRunner(DefaultCommandTimeout)
	}
	if command == "" {
		command = DefaultBatteryCommand
		args = DefaultBatteryArgs
	}
	return &CommandBattery{
		runner:  runner,
		diag:    diag.Named("battery"),
		command: command,
		args:    args,
	}
}

func (b *CommandBattery) Name() string { return StrategyCommand }

// ReadBattery keeps only the first line of output. A first line that
// does not match is a failed read; later batteries are never consulted.
func (b *CommandBattery) ReadBattery(ctx context.Context, index int) models.BatteryInfo {
	cmdline := commandLine(b.command, b.args...)

	output, err := b.runner.Run(ctx, b.command, b.args...)
	if errors.Is(err, ErrCommandLaunch) {
		b.diag.Command("could not execute battery command", cmdline, err)
		return models.BatteryInfo{Index: 0, Percent: fallbackPercent, Status: models.StatusUnknown}
	}
	if err != nil {
		b.diag.Command("battery command failed", cmdline, err)
	}

	info := models.BatteryInfo{Index: index}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		parsed, ok := parseBatteryLine(scanner.Text())
		if !ok {
			b.diag.Command("unexpected battery command output", cmdline, nil)
			return models.BatteryInfo{Index: index}
		}
		return parsed
	}

	b.diag.Command("battery command produced no output", cmdline, scanner.Err())
	return info
}

func parseBatteryLine(line string) (models.BatteryInfo, bool) {
	match := batteryLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return models.BatteryInfo{}, false
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return models.BatteryInfo{}, false
	}
	percent, err := strconv.Atoi(match[3])
	if err != nil {
		return models.BatteryInfo{}, false
	}

	return models.BatteryInfo{
		Index:    index,
		Status:   statusFromWord(match[2]),
		Percent:  percent,
		TimeLeft: match[4],
	}, true
}

func statusFromWord(word string) models.BatteryStatus {
	switch {
	case strings.Contains(word, "Discharging"):
		return models.StatusDischarging
	case strings.Contains(word, "Charging"):
		return models.StatusCharging
	default:
		return models.StatusUnknown
	}
}
