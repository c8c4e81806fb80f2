package cmd

import (
	"fmt"
	"strings"

	"github.com/keyatlas/keyatlas/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords <root> <scale>",
	Short: "Prints the diatonic seventh chords of a scale",
	Long:  `Prints the diatonic seventh chords of a scale, e.g. "keyatlas chords C major" or "keyatlas chords A natural_minor".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := scale.GenerateByTag(args[0], args[1])
		if err != nil {
			return err
		}
		for _, c := range chords {
			fmt.Printf("%-10v %-10v %v  (%v)\n", c.Roman, c.Symbol, strings.Join(c.Notes, " "), c.Name)
		}
		return nil
	},
}
