package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vid2gif/internal/deps"
)

func newDoctorCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools vid2gif needs are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Requirements(cfg))

			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				state := "found"
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						state = status.Detail
					}
					if !status.Optional {
						missingRequired = true
					}
				}
				requirement := "required"
				if status.Optional {
					requirement = "optional"
				}
				rows = append(rows, []string{status.Name, status.Command, requirement, state})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Requirement", "Status"},
				rows,
			))

			if missingRequired {
				return errors.New("required tools are missing")
			}
			return nil
		},
	}
}
