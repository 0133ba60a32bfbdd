package cmd

import (
	"fmt"
	"os"

	"fieldscale/internal/config"
	"fieldscale/internal/palette"
	"fieldscale/internal/render"
	"fieldscale/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	logLevelFlag string
	themeFlag    string

	// settings holds the loaded configuration for the running command.
	settings = config.GetDefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fieldscale",
	Short: "Color dashboard field values by thresholds and color schemes",
	Long: `fieldscale computes the color each value of a dashboard field is shown in.

Fields are read from panel files (YAML). A field is colored either by its
threshold steps, by a fixed color, or by its position on a continuous color
scheme between the field's min and max.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing panel files, unknown fields)
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "fieldscale version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Terminal theme (dark, light); overrides the config file")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newThresholdsCmd())
	rootCmd.AddCommand(newSchemesCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if themeFlag != "" {
		switch config.Theme(themeFlag) {
		case config.ThemeDark, config.ThemeLight:
			loaded.Display.Theme = config.Theme(themeFlag)
		default:
			return fmt.Errorf("unknown theme %q", themeFlag)
		}
	}
	if logLevelFlag != "" {
		loaded.Logging.Level = logLevelFlag
	}

	level, err := logging.ParseLevel(loaded.Logging.Level)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	logging.Debug("cli", "loaded settings: theme=%s neutral=%s", loaded.Display.Theme, loaded.Display.NeutralColor)

	settings = loaded
	return nil
}

func newRenderer() *render.Renderer {
	return render.NewRenderer(settings.Display, palette.Default())
}
