package collector

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/prabalesh/barstat/internal/models"
	"go.uber.org/zap"
)

const (
	StrategySysfs   = "sysfs"
	StrategyCommand = "command"
	StrategyAuto    = "auto"
)

// BatteryProvider reads one battery. Implementations never fail: any
// problem degrades the returned record and is reported as a diagnostic.
type BatteryProvider interface {
	ReadBattery(ctx context.Context, index int) models.BatteryInfo
	Name() string
}

// BatteryOptions carries everything either strategy may need.
type BatteryOptions struct {
	Strategy       string
	PowerSupplyDir string
	Command        string
	Args           []string
	Runner         CommandRunner
	Diagnostics    Diagnostics
}

// NewBatteryProvider picks a strategy by name. StrategyAuto prefers the
// sysfs counters when any BAT entry exists, then the battery command if
// it is on PATH, and falls back to sysfs.
func NewBatteryProvider(opts BatteryOptions) (BatteryProvider, error) {
	strategy := opts.Strategy
	if strategy == StrategyAuto {
		strategy = probeBatteryStrategy(opts)
		opts.Diagnostics.Debug("battery strategy probed", zap.String("strategy", strategy))
	}

	switch strategy {
	case StrategySysfs, "":
		return NewSysfsBattery(opts.PowerSupplyDir, opts.Diagnostics), nil
	case StrategyCommand:
		return NewCommandBattery(opts.Runner, opts.Diagnostics, opts.Command, opts.Args...), nil
	default:
		return nil, fmt.Errorf("unknown battery strategy %q", opts.Strategy)
	}
}

func probeBatteryStrategy(opts BatteryOptions) string {
	if len(prefixedEntries(opts.PowerSupplyDir, batteryPrefix)) > 0 {
		return StrategySysfs
	}
	if opts.Command != "" {
		if _, err := exec.LookPath(opts.Command); err == nil {
			return StrategyCommand
		}
	}
	return StrategySysfs
}

// SysfsBattery reads the power_supply counters directly.
type SysfsBattery struct {
	dir  string
	diag Diagnostics
}

func NewSysfsBattery(powerSupplyDir string, diag Diagnostics) *SysfsBattery {
	if powerSupplyDir == "" {
		powerSupplyDir = DefaultPowerSupplyDir
	}
	return &SysfsBattery{dir: powerSupplyDir, diag: diag.Named("battery")}
}

func (b *SysfsBattery) Name() string { return StrategySysfs }

func (b *SysfsBattery) ReadBattery(_ context.Context, index int) models.BatteryInfo {
	info := models.BatteryInfo{Index: index}
	batteryDir := filepath.Join(b.dir, batteryPrefix+strconv.Itoa(index))

	statusPath := filepath.Join(batteryDir, "status")
	if status, err := readSysfsString(statusPath); err != nil || status == "" {
		b.diag.Path("could not read battery status", statusPath, err)
	} else {
		info.Status = statusFromCode(status[0])
	}

	// Older hardware reports charge_* in µAh instead of energy_* in µWh.
	// The ratio is the same either way.
	full, fullPath, fullErr := readFirstSysfsInt(
		filepath.Join(batteryDir, "energy_full"),
		filepath.Join(batteryDir, "charge_full"),
	)
	if fullErr != nil {
		b.diag.Path("could not read battery energy max", fullPath, fullErr)
	}

	now, nowPath, err := readFirstSysfsInt(
		filepath.Join(batteryDir, "energy_now"),
		filepath.Join(batteryDir, "charge_now"),
	)
	if err != nil {
		b.diag.Path("could not read battery energy now", nowPath, err)
	}

	if full > 0 {
		info.Percent = int(now * 100 / full)
	} else if fullErr == nil {
		b.diag.Path("battery energy max is zero", fullPath, nil)
	}

	return info
}

func statusFromCode(code byte) models.BatteryStatus {
	switch code {
	case 'C':
		return models.StatusCharging
	case 'D':
		return models.StatusDischarging
	case 'F':
		return models.StatusFull
	default:
		return models.StatusUnknown
	}
}
