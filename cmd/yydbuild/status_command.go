package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yydbuild/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the environment can run a build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				state := "ok"
				if !result.Passed {
					state = "missing"
					failed++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Check", "State", "Detail"}, rows))
			if ctx.configResolved {
				fmt.Fprintf(out, "Config: %s\n", ctx.configPath)
			} else {
				fmt.Fprintln(out, "Config: built-in defaults")
			}

			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}
}
