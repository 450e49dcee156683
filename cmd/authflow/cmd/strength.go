package cmd

import (
	"fmt"

	"github.com/nfrund/authflow/internal/password"
	"github.com/spf13/cobra"
)

var strengthConfirm string

var strengthCmd = &cobra.Command{
	Use:   "strength <password>",
	Short: "Score a password against the strength rules",
	Long: `Score a password against the five strength rules used by the
reset form. With --confirm the match check is reported as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := password.Evaluate(args[0], strengthConfirm)
		out := cmd.OutOrStdout()

		for _, rule := range r.Rules() {
			mark := " "
			if rule.Satisfied {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s\n", mark, rule.Label)
		}
		label := r.Label()
		if label == "" {
			label = "None"
		}
		fmt.Fprintf(out, "Score: %d/5 (%s)\n", r.Score(), label)
		if cmd.Flags().Changed("confirm") {
			fmt.Fprintf(out, "Matches: %t\n", r.Matches)
		}
		if !r.Strong() {
			return fmt.Errorf("password is too weak: %d of %d rules required", r.Score(), password.StrongThreshold)
		}
		return nil
	},
}

func init() {
	strengthCmd.Flags().StringVarP(&strengthConfirm, "confirm", "c", "", "confirmation to compare against")
	rootCmd.AddCommand(strengthCmd)
}
