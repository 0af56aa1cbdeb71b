package cmd

import (
	"fmt"

	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/adamanr/corp_summary/internal/menu"
	"github.com/spf13/cobra"
)

func newHierarchyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hierarchy",
		Short: "Print departments and their teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, closer, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			hierarchy := controllers.NewDepartmentController(deps).GetHierarchy()
			return menu.RenderHierarchy(cmd.OutOrStdout(), hierarchy)
		},
	}
}

func newReportCmd(opts *options) *cobra.Command {
	var export bool

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the per-department salary report",
		Long:  `Print the per-department salary report, or save it to the output file with --export.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, closer, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			controller := controllers.NewDepartmentController(deps)

			if export {
				path, err := controller.ExportReport()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Отчет сохранен в файл: %s\n", path)
				return err
			}

			report, err := controller.GetReport()
			if err != nil {
				return err
			}
			return menu.RenderReport(cmd.OutOrStdout(), report)
		},
	}

	reportCmd.Flags().BoolVarP(&export, "export", "e", false, "save the report to the output file")

	return reportCmd
}
