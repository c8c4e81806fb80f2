package cmd

import (
	"fmt"

	"github.com/keyatlas/keyatlas/export"
	"github.com/keyatlas/keyatlas/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <scale> <file.mid>",
	Short: "Writes a scale's chords as a MIDI file",
	Long:  `Generates the diatonic seventh chords of a scale and writes them to a Standard MIDI File, one bar per chord.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := scale.GenerateByTag(args[0], args[1])
		if err != nil {
			return err
		}
		if err := export.WriteFile(chords, args[2]); err != nil {
			return err
		}
		fmt.Printf("wrote %v chords to %v\n", len(chords), args[2])
		return nil
	},
}
