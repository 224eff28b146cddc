package commands

import (
	"fmt"

	"github.com/loykin/demosync/internal/reclaim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ResetCmd deletes demo environments and collections from the workspace.
var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete demo environments and collections from the workspace",
	Long: "Without flags every environment and collection whose name looks like a demo asset is deleted.\n" +
		"With --env-name or --collection-name only the first exact match of each name is deleted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(viper.GetViper())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		envName, _ := cmd.Flags().GetString("env-name")
		collName, _ := cmd.Flags().GetString("collection-name")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		title(out, "Postman Demo Reset – starting…")
		_, _ = fmt.Fprintf(out, "Workspace: %s\n", rt.client.Workspace())

		r := reclaim.New(rt.client, out, reclaim.Options{DryRun: dryRun})
		var report *reclaim.Report
		if envName != "" || collName != "" {
			report, err = r.Targeted(commandContext(cmd), envName, collName)
		} else {
			report, err = r.Bulk(commandContext(cmd))
		}
		if err != nil {
			return err
		}
		// Failed deletes were already reported and do not fail the run.
		if failed := report.Failed(); len(failed) > 0 {
			warn(out, fmt.Sprintf("%d delete(s) failed.", len(failed)))
		}
		success(out, "Demo reset complete.")
		return nil
	},
}

func init() {
	ResetCmd.Flags().String("env-name", "", "delete only the environment with this exact name")
	ResetCmd.Flags().String("collection-name", "", "delete only the collection with this exact name")
	ResetCmd.Flags().Bool("dry-run", false, "list what would be deleted without deleting")
}
