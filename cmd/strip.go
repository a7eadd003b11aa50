package cmd

import (
	"fmt"

	"github.com/spigell/spkit/internal/markup"

	"github.com/spf13/cobra"
)

var stripCmd = &cobra.Command{
	Use:   "strip [markup]",
	Short: "Remove all tags from markup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadInput(cmd, args)
		if err != nil {
			return err
		}

		out := markup.StripHTML(input)
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			out = markup.PlainText(input)
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringP("file", "f", "", "read markup from file")
	stripCmd.Flags().BoolP("plain", "p", false, "also decode entities and collapse whitespace")
}
