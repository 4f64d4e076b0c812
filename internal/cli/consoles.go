package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openneighborhood/neighborhood/internal/config"
)

func knownConsoles() *config.KnownConsoles {
	path := consolesFile
	if path == "" {
		path = config.DefaultConsolesPath()
	}
	return config.NewKnownConsoles(path)
}

func newConsolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consoles",
		Short: "Manage the saved console list",
	}
	cmd.AddCommand(newConsolesListCmd())
	cmd.AddCommand(newConsolesAddCmd())
	cmd.AddCommand(newConsolesRemoveCmd())
	return cmd
}

func newConsolesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved consoles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			consoles, err := knownConsoles().List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(consoles) == 0 {
				fmt.Fprintln(out, "No consoles saved. Add one with 'neighborhood consoles add <ip>'.")
				return nil
			}
			fmt.Fprintf(out, "%-24s %s\n", "NAME", "IP ADDRESS")
			for _, c := range consoles {
				fmt.Fprintf(out, "%-24s %s\n", c.Name, c.IPAddress)
			}
			return nil
		},
	}
}

func newConsolesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <ip>",
		Short: "Connect to a console and save it",
		Long: `Connect to the console at <ip>, read its name and add it to the saved list.
The console must be reachable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			var name string
			err := withConsole(address, func(s *session) error {
				name = s.console.Name()
				return nil
			})
			if err != nil {
				return err
			}
			if err := knownConsoles().Add(config.KnownConsole{Name: name, IPAddress: address}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s (%s)\n", name, address)
			return nil
		},
	}
}

func newConsolesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <ip>",
		Aliases: []string{"rm"},
		Short:   "Remove a console from the saved list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := knownConsoles().Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", args[0])
			return nil
		},
	}
}
