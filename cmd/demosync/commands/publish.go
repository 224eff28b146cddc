package commands

import (
	"fmt"

	"github.com/loykin/demosync/internal/publish"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PublishCmd creates or updates the configured demo environment and collection.
var PublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Create or update the demo environment and collection from environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(viper.GetViper())
		if err != nil {
			return err
		}
		s := rt.settings
		manifest, _ := cmd.Flags().GetString("manifest")
		governance, _ := cmd.Flags().GetBool("governance")

		plan := publish.Plan{
			EnvironmentName: s.EnvName,
			CollectionName:  s.CollectionName,
			BaseURL:         s.ServiceBaseURL,
			APIKeyValue:     s.ServiceAPIKey,
			Mode:            publish.ModeStatic,
			EnvironmentUID:  s.EnvUID,
			CollectionUID:   s.CollectionUID,
			Governance:      s.Governance || governance,
			ShowPayloads:    true,
			ManifestPath:    manifest,
		}
		if s.OpenAPISpecPath != "" {
			plan.Mode = publish.ModeOpenAPI
			plan.OpenAPISource = s.OpenAPISpecPath
		}

		out := cmd.OutOrStdout()
		m, err := publish.New(rt.client, rt.loader, out).Publish(commandContext(cmd), plan)
		if err != nil {
			return err
		}
		success(out, "Done.")
		_, _ = fmt.Fprintf(out, "Environment UID: %s\n", m.EnvironmentUID)
		_, _ = fmt.Fprintf(out, "Collection UID: %s\n", m.CollectionUID)
		return nil
	},
}

func init() {
	PublishCmd.Flags().String("manifest", publish.DefaultManifest, "path of the JSON file recording the published UIDs")
	PublishCmd.Flags().Bool("governance", false, "require the collection name to start with \"Enterprise\" (also GOVERNANCE_CHECK)")
}
