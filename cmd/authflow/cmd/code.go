package cmd

import (
	"fmt"

	"github.com/nfrund/authflow/internal/verification"
	"github.com/spf13/cobra"
)

var codeCmd = &cobra.Command{
	Use:   "code <code>",
	Short: "Check the shape of a verification code",
	Long: `Check a verification code the way the validate-email form does:
input is clamped to six characters, then must be six ASCII digits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := verification.Clamp(args[0])
		if err := verification.Validate(code); err != nil {
			return fmt.Errorf("%q: %w", code, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is well formed\n", code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
}
