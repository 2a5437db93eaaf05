package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xtding233/neuroboost/internal/config"
)

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:          "neuroboost",
		Short:        "Brain-training mini-games with a crystal gacha",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlayCmd(&cfg),
		newProfileCmd(&cfg),
		newGachaCmd(&cfg),
		newMissionsCmd(&cfg),
		newRankingsCmd(&cfg),
		newCollectionCmd(&cfg),
		newSimCmd(&cfg),
		newResetCmd(&cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
