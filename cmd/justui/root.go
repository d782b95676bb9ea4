package main

import (
	"github.com/spf13/cobra"

	"github.com/its-just-ui/justui-go/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "justui",
		Short:         "justui demos the just-ui slider interaction engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newSliderCmd(flags, log))
	cmd.AddCommand(newColorPickerCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func demoLogger(flags *rootFlags, log *logger.Logger) *logger.Logger {
	if !flags.verbose {
		return log
	}
	verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return log
	}
	return verbose
}
