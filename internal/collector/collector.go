package collector

import (
	"context"
	"time"

	"github.com/prabalesh/barstat/internal/models"
	"go.uber.org/zap"
)

// Options configures a StatsCollector. Zero values select the Linux
// defaults.
type Options struct {
	PowerSupplyDir string
	ThermalDir     string
	NetDir         string

	BatteryStrategy string
	BatteryCommand  string
	BatteryArgs     []string

	Interface         string
	WirelessInterface string
	WirelessCommand   string

	MixerCommand string
	MixerDevice  string
	MixerControl string

	CommandTimeout time.Duration

	Logger *zap.Logger
	// Runner and Mixer replace the process-backed defaults.
	Runner CommandRunner
	Mixer  Mixer
}

// StatsCollector runs every reader once per Collect. Readers hold no
// mutable state and nothing is kept between polls.
type StatsCollector struct {
	devices  *DeviceEnumerator
	battery  BatteryProvider
	thermal  *ThermalReader
	counters *NetCounterReader
	wireless *WirelessReader
	volume   *VolumeReader

	iface         string
	wirelessIface string
	now           func() time.Time
}

func NewStatsCollector(opts Options) (*StatsCollector, error) {
	diag := NewDiagnostics(opts.Logger)

	if opts.PowerSupplyDir == "" {
		opts.PowerSupplyDir = DefaultPowerSupplyDir
	}
	if opts.ThermalDir == "" {
		opts.ThermalDir = DefaultThermalDir
	}
	if opts.BatteryStrategy == "" {
		opts.BatteryStrategy = StrategyAuto
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewExecRunner(opts.CommandTimeout)
	}

	battery, err := NewBatteryProvider(BatteryOptions{
		Strategy:       opts.BatteryStrategy,
		PowerSupplyDir: opts.PowerSupplyDir,
		Command:        opts.BatteryCommand,
		Args:           opts.BatteryArgs,
		Runner:         runner,
		Diagnostics:    diag,
	})
	if err != nil {
		return nil, err
	}

	mixer := opts.Mixer
	if mixer == nil {
		mixer = NewAmixerMixer(runner, diag, opts.MixerCommand, opts.MixerDevice)
	}

	wirelessIface := opts.WirelessInterface
	if wirelessIface == "" {
		wirelessIface = opts.Interface
	}

	return &StatsCollector{
		devices:       NewDeviceEnumerator(opts.PowerSupplyDir, opts.ThermalDir),
		battery:       battery,
		thermal:       NewThermalReader(opts.ThermalDir, diag),
		counters:      NewNetCounterReader(opts.NetDir, diag),
		wireless:      NewWirelessReader(runner, diag, opts.WirelessCommand),
		volume:        NewVolumeReader(mixer, opts.MixerControl, diag),
		iface:         opts.Interface,
		wirelessIface: wirelessIface,
		now:           time.Now,
	}, nil
}

// BatterySource names the battery strategy in use.
func (s *StatsCollector) BatterySource() string {
	return s.battery.Name()
}

func (s *StatsCollector) Collect(ctx context.Context) models.Snapshot {
	snapshot := models.Snapshot{
		BatterySource: s.battery.Name(),
		Interface:     s.iface,
		CollectedAt:   s.now(),
	}

	for _, index := range s.batteryIndices() {
		snapshot.Batteries = append(snapshot.Batteries, s.battery.ReadBattery(ctx, index))
	}
	for _, index := range s.devices.ThermalZoneIndices() {
		snapshot.Thermal = append(snapshot.Thermal, s.thermal.ReadThermal(ctx, index))
	}

	if s.iface != "" {
		snapshot.NetSpeed = s.counters.ReadNetSpeed(ctx, s.iface)
	}
	if s.wirelessIface != "" {
		snapshot.Wireless = s.wireless.ReadNetInfo(ctx, s.wirelessIface)
	} else {
		snapshot.Wireless = models.NetInfo{Name: models.NetNameDown, SignalLevel: noSignal}
	}

	snapshot.Volume = s.volume.ReadVolume(ctx)
	return snapshot
}

// batteryIndices is a single read for the command strategy, which only
// ever reports the first battery in the command output.
func (s *StatsCollector) batteryIndices() []int {
	if s.battery.Name() == StrategyCommand {
		return []int{0}
	}
	return s.devices.BatteryIndices()
}
