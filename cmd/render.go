package cmd

import (
	"fmt"

	"fieldscale/internal/config"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var fieldNames []string

	cmd := &cobra.Command{
		Use:   "render <panel.yaml>",
		Short: "Render the values of a panel in their scale colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := config.LoadPanel(args[0])
			if err != nil {
				return err
			}
			if len(fieldNames) > 0 {
				filtered := config.Panel{Title: panel.Title}
				for _, name := range fieldNames {
					f, ok := panel.Field(name)
					if !ok {
						return fmt.Errorf("panel has no field %q", name)
					}
					filtered.Fields = append(filtered.Fields, f)
				}
				panel = filtered
			}

			fmt.Fprint(cmd.OutOrStdout(), newRenderer().RenderPanel(panel))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&fieldNames, "field", "f", nil, "Only render these fields")
	return cmd
}
