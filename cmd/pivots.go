package cmd

import (
	"fmt"
	"strings"

	"github.com/keyatlas/keyatlas/pivot"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pivotsCmd)
}

var pivotsCmd = &cobra.Command{
	Use:   "pivots <rootA> <scaleA> <rootB> <scaleB>",
	Short: "Finds pivot chords between two keys",
	Long:  `Finds chords shared between two keys and ranks them as modulation candidates, e.g. "keyatlas pivots C major G major".`,
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		pivots, err := pivot.FindPivotChordsByTag(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		if len(pivots) == 0 {
			fmt.Println("no shared chords; try an intermediate key")
			return nil
		}
		for _, p := range pivots {
			fmt.Printf("%2v/10  %-8v %v | %v  [%v]\n",
				p.Score, p.Symbol, p.RoleA, p.RoleB, strings.Join(p.Notes, " "))
		}
		return nil
	},
}
