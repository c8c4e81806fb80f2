package cmd

import (
	"fmt"

	"github.com/keyatlas/keyatlas/related"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(relatedCmd)
}

var relatedCmd = &cobra.Command{
	Use:   "related <root> <scale>",
	Short: "Lists musically related keys",
	Long:  `Lists keys related to the given one, grouped by how common the relationship is.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := related.FindRelatedKeysByTag(args[0], args[1])
		if err != nil {
			return err
		}
		var tier string
		for _, k := range keys {
			if k.Tier != tier {
				tier = k.Tier
				fmt.Printf("-- %v commonality --\n", tier)
			}
			fmt.Printf("%-28v %v %v\n", k.Label, k.Root, k.ScaleType)
			if k.Description != "" {
				fmt.Printf("%28v %v\n", "", k.Description)
			}
		}
		return nil
	},
}
