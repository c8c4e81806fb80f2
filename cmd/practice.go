package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/practice"
	"github.com/spf13/cobra"
)

var (
	practiceDifficulty string
	practiceRoot       string
	practiceScale      string
)

func init() {
	practiceCmd.Flags().StringVarP(&practiceDifficulty, "difficulty", "d", practice.DifficultyEasy, "easy, medium or hard")
	practiceCmd.Flags().StringVar(&practiceRoot, "root", "", "fix the key root (default random)")
	practiceCmd.Flags().StringVar(&practiceScale, "scale", "", "fix the scale type (default random)")
	rootCmd.AddCommand(practiceCmd)
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Runs the chord-identification game in the terminal",
	Long:  `Shows a chord's notes and asks which chord it is. Answer with the choice number; q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice()
	},
}

func runPractice() error {
	ctx := context.Background()
	store := practice.NewMemoryStore()
	scanner := bufio.NewScanner(os.Stdin)
	const player = "terminal"

	for {
		round, err := practice.NewRound(practice.Options{
			Difficulty: practiceDifficulty,
			Root:       practiceRoot,
			ScaleType:  practiceScale,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nKey: %v %v\n", round.Root, round.ScaleType)
		fmt.Printf("Notes: %v\n", strings.Join(round.Notes, " "))
		for i, choice := range round.Choices {
			fmt.Printf("  %v) %v\n", i+1, choice)
		}
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			break
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(round.Choices) {
			fmt.Println("answer with a choice number, or q to quit")
			continue
		}

		correct := practice.Check(round, round.Choices[n-1])
		if correct {
			fmt.Println("correct!")
		} else {
			fmt.Printf("nope, that was %v\n", round.Answer)
		}
		stats, err := store.RecordAnswer(ctx, player, correct)
		if err != nil {
			return err
		}
		fmt.Printf("score: %v/%v  streak: %v\n", stats.Correct, stats.Total, stats.Streak)
	}

	stats, err := store.Stats(ctx, player)
	if err != nil {
		return err
	}
	printSummary(stats)
	return scanner.Err()
}

func printSummary(s model.Stats) {
	if s.Total == 0 {
		return
	}
	fmt.Printf("\n%v of %v correct (%.0f%%), best streak %v\n",
		s.Correct, s.Total, s.Accuracy()*100, s.BestStreak)
}
