package models

import "fmt"

type BatteryStatus int

const (
	StatusUnknown BatteryStatus = iota
	StatusCharging
	StatusDischarging
	StatusFull
)

func (s BatteryStatus) String() string {
	switch s {
	case StatusCharging:
		return "Charging"
	case StatusDischarging:
		return "Discharging"
	case StatusFull:
		return "Full"
	default:
		return "Unknown"
	}
}

func (s BatteryStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *BatteryStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Charging":
		*s = StatusCharging
	case "Discharging":
		*s = StatusDischarging
	case "Full":
		*s = StatusFull
	case "Unknown":
		*s = StatusUnknown
	default:
		return fmt.Errorf("unknown battery status %q", text)
	}
	return nil
}

// BatteryInfo is a single battery reading. Percent is not clamped: a
// battery reporting more energy than its full capacity yields > 100.
type BatteryInfo struct {
	Index    int           `json:"index"`
	Status   BatteryStatus `json:"status"`
	Percent  int           `json:"percent"`
	TimeLeft string        `json:"time_left,omitempty"`
}
