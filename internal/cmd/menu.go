package cmd

import (
	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/adamanr/corp_summary/internal/menu"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command, opts *options) error {
	deps, closer, err := bootstrap(opts, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), controllers.NewDepartmentController(deps), deps.Logger)
	return m.Run(cmd.Context())
}
