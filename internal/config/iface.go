package config

import (
	"slices"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// DetectInterface returns the first non-loopback interface that is up,
// preferring wireless ones (wl*). It returns "" when none qualifies.
func DetectInterface() string {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return ""
	}
	return pickInterface(ifaces)
}

func pickInterface(ifaces psnet.InterfaceStatList) string {
	var fallback string
	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		if strings.HasPrefix(iface.Name, "wl") {
			return iface.Name
		}
		if fallback == "" {
			fallback = iface.Name
		}
	}
	return fallback
}

// ResolveInterfaces fills empty interface settings from DetectInterface.
func (c *Config) ResolveInterfaces(detect func() string) {
	if c.Network.Interface == "" {
		c.Network.Interface = detect()
	}
	if c.Wireless.Interface == "" {
		c.Wireless.Interface = c.Network.Interface
	}
}
