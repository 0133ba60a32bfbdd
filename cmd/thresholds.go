package cmd

import (
	"fmt"

	"fieldscale/internal/config"

	"github.com/spf13/cobra"
)

func newThresholdsCmd() *cobra.Command {
	var fieldName string

	cmd := &cobra.Command{
		Use:   "thresholds <panel.yaml>",
		Short: "List the threshold steps of a field in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := config.LoadPanel(args[0])
			if err != nil {
				return err
			}

			r := newRenderer()
			for _, f := range panel.Fields {
				if fieldName != "" && f.Name != fieldName {
					continue
				}
				if f.Config.Thresholds == nil {
					if fieldName != "" {
						return fmt.Errorf("field %q has no thresholds", fieldName)
					}
					continue
				}
				out, err := r.RenderThresholds(f)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", "", "Only list this field")
	return cmd
}
