package collector

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/prabalesh/barstat/internal/models"
)

// ThermalReader reads thermal_zoneN/temp, reported by the kernel in
// millidegrees Celsius.
type ThermalReader struct {
	dir  string
	diag Diagnostics
}

func NewThermalReader(thermalDir string, diag Diagnostics) *ThermalReader {
	if thermalDir == "" {
		thermalDir = DefaultThermalDir
	}
	return &ThermalReader{dir: thermalDir, diag: diag.Named("thermal")}
}

func (t *ThermalReader) ReadThermal(_ context.Context, index int) models.ThermalInfo {
	info := models.ThermalInfo{Index: index}

	path := filepath.Join(t.dir, thermalZonePrefix+strconv.Itoa(index), "temp")
	milliC, err := readSysfsInt(path)
	if err != nil {
		t.diag.Path("could not read thermal status", path, err)
		return info
	}

	info.TempC = int(milliC / 1000)
	return info
}
