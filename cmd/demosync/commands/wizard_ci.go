package commands

import (
	"fmt"

	"github.com/loykin/demosync/internal/publish"
	"github.com/loykin/demosync/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// WizardCICmd is the non-interactive wizard driven by environment variables.
var WizardCICmd = &cobra.Command{
	Use:   "wizard-ci",
	Short: "Create a customer-specific demo from CUSTOMER_NAME, BASE_URL, API_KEY_VALUE and ENDPOINTS",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(viper.GetViper())
		if err != nil {
			return err
		}
		s := rt.settings
		out := cmd.OutOrStdout()
		manifest, _ := cmd.Flags().GetString("manifest")

		answers := wizard.Batch(s.CustomerName, s.BaseURL, s.APIKeyValue, s.Endpoints)
		_, _ = fmt.Fprintf(out, "Publishing demo for %s\n", answers.Customer)
		m, err := publish.New(rt.client, rt.loader, out).Publish(commandContext(cmd), answers.Plan(manifest))
		if err != nil {
			return err
		}
		success(out, "Demo setup complete")
		_, _ = fmt.Fprintf(out, "Environment UID: %s\n", m.EnvironmentUID)
		_, _ = fmt.Fprintf(out, "Collection UID:  %s\n", m.CollectionUID)
		return nil
	},
}

func init() {
	WizardCICmd.Flags().String("manifest", publish.WizardManifest, "path of the JSON file recording the created UIDs")
}
