package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harsh8864/bharat-ai-tutor/internal/config"
	"github.com/harsh8864/bharat-ai-tutor/internal/learner"
	"github.com/harsh8864/bharat-ai-tutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openConfiguredStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.LoadAll(); err != nil {
			return err
		}

		var quizzes, correct, topics, streakSum int
		for _, s := range st.All() {
			quizzes += s.Score.Total
			correct += s.Score.Correct
			topics += len(s.TopicsStudied)
			streakSum += s.StreakDays
		}

		users := st.Len()
		fmt.Printf("Users:          %d\n", users)
		fmt.Printf("Quizzes taken:  %d\n", quizzes)
		fmt.Printf("Correct:        %d\n", correct)
		if quizzes > 0 {
			fmt.Printf("Accuracy:       %.1f%%\n", float64(correct)/float64(quizzes)*100)
		}
		fmt.Printf("Topics studied: %d\n", topics)
		if users > 0 {
			fmt.Printf("Avg streak:     %.1f days\n", float64(streakSum)/float64(users))
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <userId>",
	Short: "Reset a learner's session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openConfiguredStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.LoadAll(); err != nil {
			return err
		}

		userID := args[0]
		old, ok := st.Get(userID)
		if !ok {
			return fmt.Errorf("no session for %s", userID)
		}

		fresh := learner.NewSession(old.JoinDate)
		st.Put(userID, fresh)
		if err := st.SaveAll(); err != nil {
			return err
		}
		fmt.Printf("Session reset for %s\n", userID)
		return nil
	},
}

func openConfiguredStore(cmd *cobra.Command) (store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataFile = p
	}
	return openStore(cfg)
}
