package collector

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPowerSupplyDir = "/sys/class/power_supply"
	DefaultThermalDir     = "/sys/class/thermal"
	DefaultNetDir         = "/sys/class/net"

	batteryPrefix     = "BAT"
	thermalZonePrefix = "thermal_zone"
)

// DeviceEnumerator lists battery and thermal zone devices. A missing
// directory is a machine without that subsystem and yields zero devices.
type DeviceEnumerator struct {
	PowerSupplyDir string
	ThermalDir     string
}

func NewDeviceEnumerator(powerSupplyDir, thermalDir string) *DeviceEnumerator {
	return &DeviceEnumerator{
		PowerSupplyDir: powerSupplyDir,
		ThermalDir:     thermalDir,
	}
}

func (d *DeviceEnumerator) CountBatteries() int {
	return len(prefixedEntries(d.PowerSupplyDir, batteryPrefix))
}

func (d *DeviceEnumerator) CountThermalZones() int {
	return len(prefixedEntries(d.ThermalDir, thermalZonePrefix))
}

// BatteryIndices returns the sorted N of every BATN entry.
func (d *DeviceEnumerator) BatteryIndices() []int {
	return indexSuffixes(prefixedEntries(d.PowerSupplyDir, batteryPrefix), batteryPrefix)
}

// ThermalZoneIndices returns the sorted N of every thermal_zoneN entry.
func (d *DeviceEnumerator) ThermalZoneIndices() []int {
	return indexSuffixes(prefixedEntries(d.ThermalDir, thermalZonePrefix), thermalZonePrefix)
}

func prefixedEntries(dir, prefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}
	return names
}

// indexSuffixes skips entries like "BATT" whose suffix is not a number.
func indexSuffixes(names []string, prefix string) []int {
	var indices []int
	for _, name := range names {
		index, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
		if err != nil || index < 0 {
			continue
		}
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}
