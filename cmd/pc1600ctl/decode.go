package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pc1600ctl/internal/docfile"
	"pc1600ctl/internal/preset"
)

func newDecodeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "decode <dump.syx> <out.json|out.yaml>",
		Short: "Convert a sysex preset dump to an editable document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("output file %q already exists (use --force to overwrite)", outPath)
				}
			}
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			doc, err := preset.FromSysex(raw)
			if err != nil {
				return err
			}
			return docfile.Write(outPath, doc)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")
	return cmd
}
