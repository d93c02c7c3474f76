package command

import (
	commandHandler "hrdesk/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewStoreHandler)

type Command struct {
	storeCommandHandler *commandHandler.StoreHandler
}

// NewCommand .
func NewCommand(
	storeCommandHandler *commandHandler.StoreHandler,
) *Command {
	return &Command{
		storeCommandHandler: storeCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "reset slots to the built-in fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			slots, _ := cmd.Flags().GetStringSlice("slot")
			return command.storeCommandHandler.Seed(cmd, slots)
		},
	}
	seedCmd.Flags().StringSlice("slot", nil, "slot name to reset, repeatable; all slots when omitted")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export every slot as json, yaml or xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			return command.storeCommandHandler.Export(cmd, format, out)
		},
	}
	exportCmd.Flags().String("format", "json", "json | yaml | xlsx")
	exportCmd.Flags().String("out", "", "output file, stdout when empty")

	rootCmd.AddCommand(seedCmd, exportCmd)
}
