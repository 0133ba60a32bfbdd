package cmd

import (
	"fmt"
	"strings"

	"fieldscale/internal/palette"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const swatchWidth = 16

func newSchemesCmd() *cobra.Command {
	var showColors bool

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the continuous color schemes with a preview",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := palette.Default()
			for _, name := range p.Schemes() {
				scheme, _ := p.Scheme(name)
				var swatch strings.Builder
				for i := 0; i < swatchWidth; i++ {
					c := scheme.At(float64(i) / float64(swatchWidth-1))
					swatch.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Clamped().Hex())).Render(" "))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "continuous-%-10s %s\n", name, swatch.String())
			}

			if !showColors {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout())
			for _, name := range palette.Names() {
				hex, err := palette.ResolveHex(name)
				if err != nil {
					continue
				}
				chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s %s\n", name, hex, chip)
			}
		},
	}

	cmd.Flags().BoolVar(&showColors, "colors", false, "Also list the named palette colors")
	return cmd
}
