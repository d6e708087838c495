package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage learned vocabulary",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learned words with practice counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.Vocab().ListEntries(cmd.Context())
		if err != nil {
			return fmt.Errorf("list vocab: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Noch keine Wörter. Sie kommen aus den Pfad-Schritten dazu.")
			return nil
		}

		for _, e := range entries {
			last := "nie"
			if e.LastPracticedAt != nil {
				last = e.LastPracticedAt.Local().Format("2006-01-02")
			}
			fmt.Printf("%-24s %3d× geübt, zuletzt %s\n", e.Word.Term, e.PracticeCount, last)
			if e.Word.Definition != "" {
				fmt.Printf("    %s\n", e.Word.Definition)
			}
		}
		return nil
	},
}

var vocabAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the vocabulary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		words, err := st.Vocab().EnsureTerms(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("add words: %w", err)
		}
		fmt.Printf("%d Wörter gespeichert.\n", len(words))
		return nil
	},
}

func init() {
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabAddCmd)
}
