package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyatlas",
	Short: "Music-theory reference and practice tool",
	Long:  `Generates diatonic seventh chords, related keys and pivot-chord modulation suggestions, and runs a chord-identification practice game.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
