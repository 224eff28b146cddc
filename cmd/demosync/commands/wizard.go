package commands

import (
	"fmt"
	"os"

	"github.com/loykin/demosync/internal/publish"
	"github.com/loykin/demosync/internal/wizard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPrompter builds the prompter used by the interactive wizard. Forms fall
// back to accessible line prompts when stdin is not a terminal.
var NewPrompter = func() wizard.Prompter {
	fd := os.Stdin.Fd()
	return &wizard.HuhPrompter{Accessible: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)}
}

// WizardCmd asks for customer details and publishes a tailored demo.
var WizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively create a customer-specific demo environment and collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(viper.GetViper())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		manifest, _ := cmd.Flags().GetString("manifest")

		title(out, "Live Demo Wizard – Postman Enterprise Sync")
		answers, err := wizard.Gather(NewPrompter(), out)
		if err != nil {
			return err
		}
		m, err := publish.New(rt.client, rt.loader, out).Publish(commandContext(cmd), answers.Plan(manifest))
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out)
		success(out, "Done.")
		_, _ = fmt.Fprintf(out, "Environment created: %s (UID: %s)\n", answers.EnvironmentName(), m.EnvironmentUID)
		_, _ = fmt.Fprintf(out, "Collection created:  %s (UID: %s)\n", answers.CollectionName(), m.CollectionUID)
		hint(out, "You can now refresh the workspace in Postman and demo against their real-ish setup.")
		return nil
	},
}

func init() {
	WizardCmd.Flags().String("manifest", publish.WizardManifest, "path of the JSON file recording the created UIDs")
}
