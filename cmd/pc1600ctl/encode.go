package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pc1600ctl/internal/docfile"
	"pc1600ctl/internal/preset"
)

func newEncodeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "encode <in.json|in.yaml> <dump.syx>",
		Short: "Convert an editable document back to a sysex preset dump",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("output file %q already exists (use --force to overwrite)", outPath)
				}
			}
			doc, err := docfile.Read(inPath)
			if err != nil {
				return err
			}
			raw, err := preset.ToSysex(doc)
			if err != nil {
				return err
			}
			return os.WriteFile(outPath, raw, 0o644)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")
	return cmd
}
