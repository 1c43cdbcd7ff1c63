package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pc1600ctl/internal/docfile"
	"pc1600ctl/internal/preset"
)

func newPushCmd() *cobra.Command {
	var mf midiFlags

	cmd := &cobra.Command{
		Use:   "push <in.syx|in.json|in.yaml>",
		Short: "Send a preset to the hardware's edit buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			cfg, err := mf.resolve()
			if err != nil {
				return err
			}

			var raw []byte
			if strings.EqualFold(filepath.Ext(inPath), ".syx") {
				raw, err = os.ReadFile(inPath)
			} else {
				var doc *preset.Document
				if doc, err = docfile.Read(inPath); err == nil {
					raw, err = preset.ToSysex(doc)
				}
			}
			if err != nil {
				return err
			}

			dev, _, closer, err := openDevice(cfg)
			if err != nil {
				return err
			}
			defer closer()
			return dev.SendDump(raw)
		},
	}

	mf.register(cmd)
	return cmd
}
