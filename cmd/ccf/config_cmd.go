package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show the resolved configuration",
	Long:    "Print the configuration after applying ccf.toml and CCF_* environment overrides.",
	GroupID: "setup",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if ok, err := printStructured(w, cfg); ok {
			return err
		}
		fmt.Fprintf(w, "# root: %s\n", cfg.Root)
		return toml.NewEncoder(w).Encode(cfg)
	},
}
