package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/setupjs/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved toolchain without installing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputsFile, _ := cmd.Flags().GetString("inputs-file")
			workDir, _ := cmd.Flags().GetString("working-directory")
			asJSON, _ := cmd.Flags().GetBool("json")

			plan, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				InputsFile:       inputsFile,
				WorkingDirectory: workDir,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			for _, r := range plan.Toolchain.Runtimes {
				_, _ = fmt.Fprintf(out, "runtime          %s %s\n", r.Name, r.Version)
			}
			pm := plan.Toolchain.PackageManager
			_, _ = fmt.Fprintf(out, "package-manager  %s %s\n", pm.Name, pm.Version)
			if plan.BiomeVersion != "" {
				_, _ = fmt.Fprintf(out, "biome            %s\n", plan.BiomeVersion)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the plan as JSON")
	return cmd
}
