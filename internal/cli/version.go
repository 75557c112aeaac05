package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamp/pkg/lamp"
)

const modulePath = "github.com/mesh-intelligence/lamp"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lamp version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lamp v%s\nmodule: %s\n", lamp.Version, modulePath)
			return nil
		},
	}
}
