package main

// #region imports
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haldenlab/focusloop/go-engine/internal/config"
)

// #endregion

// #region globals

var (
	flagDB     string
	flagConfig string
	flagUser   string
)

// #endregion

// #region main

func main() {
	root := &cobra.Command{
		Use:           "personalizer",
		Short:         "Adaptive personalization engine for the focus app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", config.EnvOr("PERSONALIZER_DB", "personalization.db"), "path to the snapshot database")
	root.PersistentFlags().StringVar(&flagConfig, "config", config.EnvOr("PERSONALIZER_CONFIG", ""), "path to a YAML tuning file")
	root.PersistentFlags().StringVar(&flagUser, "user", config.EnvOr("PERSONALIZER_USER", "default"), "user id")

	root.AddCommand(
		newInitCmd(),
		newEventCmd(),
		newProfileCmd(),
		newReplayCmd(),
		newInspectCmd(),
		newRollbackCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// #endregion
