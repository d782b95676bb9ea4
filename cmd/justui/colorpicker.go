package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/its-just-ui/justui-go/internal/logger"
	"github.com/its-just-ui/justui-go/internal/tui/colorpicker"
)

func newColorPickerCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "colorpicker",
		Short: "Run the HSLA color picker demo (four slider engines)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("the color picker demo needs an interactive terminal")
			}

			model, err := colorpicker.New(demoLogger(flags, log))
			if err != nil {
				return err
			}
			defer model.Close()

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
