package main

import (
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"pc1600ctl/internal/config"
	"pc1600ctl/internal/device"
	"pc1600ctl/internal/logging"
)

// midiFlags are shared by every command that talks to the hardware.
// Flags override the config file, which overrides built-in defaults.
type midiFlags struct {
	port    string
	channel int
	timeout time.Duration
}

func (mf *midiFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mf.port, "port", "", "MIDI port name fragment the PC1600 is attached to")
	cmd.Flags().IntVar(&mf.channel, "channel", 0, "global MIDI channel of the device, 1-16")
	cmd.Flags().DurationVar(&mf.timeout, "timeout", 0, "how long to wait for a requested dump")
}

func (mf *midiFlags) resolve() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if mf.port != "" {
		cfg.Port = mf.port
	}
	if mf.channel != 0 {
		cfg.Channel = mf.channel
	}
	if mf.timeout != 0 {
		cfg.Timeout.Duration = mf.timeout
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openDevice resolves ports from the config and opens the output side.
// It returns the matching input port for dump requests.
func openDevice(cfg config.Config) (*device.PC1600, drivers.In, func(), error) {
	log := logging.New(flagVerbose)

	outIdx, err := device.FindOutPort(cfg.Port)
	if err != nil {
		return nil, nil, nil, err
	}
	inIdx, err := device.FindInPort(cfg.Port)
	if err != nil {
		return nil, nil, nil, err
	}

	dev, closer, err := device.Open(byte(cfg.Channel-1), outIdx, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return dev, midi.GetInPorts()[inIdx], closer, nil
}
