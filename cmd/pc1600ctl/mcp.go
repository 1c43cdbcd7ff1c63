package main

import (
	"github.com/spf13/cobra"

	"pc1600ctl/internal/logging"
	"pc1600ctl/internal/mcpsrv"
)

func newMCPCmd() *cobra.Command {
	var mf midiFlags

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server exposing the codec and the device",
		Long: `mcp serves Model Context Protocol tools over stdio. The codec tools
work standalone; the get/send tools need a PC1600 on a MIDI port. When no
matching port is found the server still starts without hardware access.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(flagVerbose)
			cfg, err := mf.resolve()
			if err != nil {
				return err
			}

			opts := mcpsrv.Options{Timeout: cfg.Timeout.Duration, Log: log}
			dev, in, closer, err := openDevice(cfg)
			if err != nil {
				log.Warn().Err(err).Msg("no PC1600 available, serving codec tools only")
			} else {
				defer closer()
				opts.Dev = dev
				opts.In = in
			}
			return mcpsrv.Serve(opts)
		},
	}

	mf.register(cmd)
	return cmd
}
