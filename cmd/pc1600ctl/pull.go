package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pc1600ctl/internal/docfile"
	"pc1600ctl/internal/preset"
)

func newPullCmd() *cobra.Command {
	var mf midiFlags

	cmd := &cobra.Command{
		Use:   "pull <out.syx|out.json|out.yaml>",
		Short: "Request the edit buffer from the hardware and save it",
		Long: `pull asks the connected PC1600 to transmit its edit buffer and writes
it to the given file: raw sysex for .syx, otherwise the document form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath := args[0]
			cfg, err := mf.resolve()
			if err != nil {
				return err
			}
			dev, in, closer, err := openDevice(cfg)
			if err != nil {
				return err
			}
			defer closer()

			raw, err := dev.RequestDump(in, cfg.Timeout.Duration)
			if err != nil {
				return err
			}
			if strings.EqualFold(filepath.Ext(outPath), ".syx") {
				return os.WriteFile(outPath, raw, 0o644)
			}
			doc, err := preset.FromSysex(raw)
			if err != nil {
				return err
			}
			return docfile.Write(outPath, doc)
		},
	}

	mf.register(cmd)
	return cmd
}
