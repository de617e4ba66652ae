package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prabalesh/barstat/internal/collector"
	"github.com/prabalesh/barstat/internal/config"
	"github.com/prabalesh/barstat/internal/ui"
)

func main() {
	var configFile string

	root := &cobra.Command{
		Use:   "barstat",
		Short: "Battery, thermal, network and volume readings for a status bar",
		Long: `barstat polls battery charge, thermal zones, interface counters,
wireless link quality and mixer volume from a Linux host and shows them
in a terminal status display.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			stats, err := newCollector(cfg, logger)
			if err != nil {
				return err
			}

			p := tea.NewProgram(ui.NewApp(stats, cfg.PollInterval), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running display: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a YAML config file")

	onceCmd := &cobra.Command{
		Use:   "once",
		Short: "Collect one snapshot and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			stats, err := newCollector(cfg, logger)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(stats.Collect(cmd.Context()))
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versioninfo.Short())
		},
	}

	root.AddCommand(onceCmd, versionCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setup(configFile string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	// stdout belongs to the display
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	cfg.ResolveInterfaces(config.DetectInterface)
	logger.Info("configuration loaded",
		zap.String("battery_strategy", cfg.Battery.Strategy),
		zap.String("interface", cfg.Network.Interface),
		zap.String("wireless_interface", cfg.Wireless.Interface),
		zap.Duration("poll_interval", cfg.PollInterval),
	)
	return cfg, logger, nil
}

func newCollector(cfg *config.Config, logger *zap.Logger) (*collector.StatsCollector, error) {
	stats, err := collector.NewStatsCollector(collector.Options{
		PowerSupplyDir:    cfg.Paths.PowerSupply,
		ThermalDir:        cfg.Paths.Thermal,
		NetDir:            cfg.Paths.Net,
		BatteryStrategy:   cfg.Battery.Strategy,
		BatteryCommand:    cfg.Battery.Command,
		BatteryArgs:       cfg.Battery.Args,
		Interface:         cfg.Network.Interface,
		WirelessInterface: cfg.Wireless.Interface,
		WirelessCommand:   cfg.Wireless.Command,
		MixerCommand:      cfg.Audio.Command,
		MixerDevice:       cfg.Audio.Device,
		MixerControl:      cfg.Audio.Control,
		CommandTimeout:    cfg.CommandTimeout,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building collector: %w", err)
	}
	logger.Debug("collector ready", zap.String("battery_source", stats.BatterySource()))
	return stats, nil
}
