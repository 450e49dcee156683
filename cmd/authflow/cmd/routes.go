package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/authflow/internal/flow"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes of the auth flows",
	Run: func(cmd *cobra.Command, args []string) {
		steps := []flow.Step{
			flow.StepSignUp,
			flow.StepSignIn,
			flow.StepRequestEmail,
			flow.StepValidateIdentity,
			flow.StepSetNewPassword,
			flow.StepComplete,
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tROUTE\tGATED")
		for _, s := range steps {
			fmt.Fprintf(w, "%s\t%s\t%t\n", s, s.Route(), s.Gated())
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
