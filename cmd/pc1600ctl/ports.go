package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available MIDI input and output ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Input ports:")
			for _, in := range midi.GetInPorts() {
				fmt.Printf("  %d: %s\n", in.Number(), in.String())
			}
			fmt.Println("Output ports:")
			for _, out := range midi.GetOutPorts() {
				fmt.Printf("  %d: %s\n", out.Number(), out.String())
			}
			return nil
		},
	}
}
