package cmd

import (
	"fmt"

	"fieldscale/internal/config"
	"fieldscale/internal/field"
	"fieldscale/internal/palette"
	"fieldscale/internal/scale"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newLookupCmd() *cobra.Command {
	var (
		fieldName string
		values    []float64
	)

	cmd := &cobra.Command{
		Use:   "lookup <panel.yaml>",
		Short: "Print the scale output for values of one field",
		Long: `Builds the scale of a panel field and prints, as YAML, the color mode in
use and what the scale returns for each --value: the color, the matched threshold step in threshold mode,
and the gradient position in continuous mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := config.LoadPanel(args[0])
			if err != nil {
				return err
			}
			f, ok := panel.Field(fieldName)
			if !ok {
				return fmt.Errorf("panel has no field %q", fieldName)
			}

			calc, err := scale.Build(f, palette.Default())
			if err != nil {
				return err
			}

			type result struct {
				Value float64     `yaml:"value"`
				Scale scale.Value `yaml:"scale"`
			}
			report := struct {
				Field   string          `yaml:"field"`
				Mode    field.ColorMode `yaml:"mode"`
				Results []result        `yaml:"results"`
			}{Field: f.Name, Mode: calc.Mode()}
			for _, v := range values {
				report.Results = append(report.Results, result{Value: v, Scale: calc.Apply(v)})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", "", "Name of the field to look up")
	cmd.Flags().Float64SliceVar(&values, "value", nil, "Value to look up (repeatable)")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
