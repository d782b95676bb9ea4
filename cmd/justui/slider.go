package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/its-just-ui/justui-go/internal/config"
	"github.com/its-just-ui/justui-go/internal/logger"
	slidertui "github.com/its-just-ui/justui-go/internal/tui/slider"
)

// defaultPresets backs the demo when no preset file is supplied.
func defaultPresets() []config.Preset {
	return []config.Preset{
		{
			ID: "volume", Label: "Volume", Min: 0, Max: 100, Step: 5,
			Default: []float64{50},
			Marks:   []config.Mark{{Value: 0, Label: "mute"}, {Value: 100, Label: "max"}},
		},
		{
			ID: "price", Label: "Price range", Min: 0, Max: 500, Step: 10,
			Range: true, Default: []float64{100, 400},
		},
		{
			ID: "locked", Label: "Locked", Min: 0, Max: 10, Step: 1,
			Default: []float64{7}, Disabled: true,
		},
	}
}

func newSliderCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Run the interactive slider demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("the slider demo needs an interactive terminal")
			}

			presets := defaultPresets()
			if configPath != "" {
				file, err := config.Load(configPath)
				if err != nil {
					return err
				}
				presets = file.Sliders
			}

			model, err := slidertui.New(presets, demoLogger(flags, log))
			if err != nil {
				return err
			}
			defer model.Close()

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a slider preset YAML file")

	return cmd
}
