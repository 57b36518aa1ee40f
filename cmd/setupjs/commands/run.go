package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/setupjs/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Install the toolchain, restore the cache and install dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputsFile, _ := cmd.Flags().GetString("inputs-file")
			workDir, _ := cmd.Flags().GetString("working-directory")

			return c.app.Run(cmd.Context(), app.RunOptions{
				InputsFile:       inputsFile,
				WorkingDirectory: workDir,
			})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func (c *CLI) newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Save the dependency cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputsFile, _ := cmd.Flags().GetString("inputs-file")
			return c.app.Post(cmd.Context(), app.PostOptions{InputsFile: inputsFile})
		},
	}
	cmd.Flags().StringP("inputs-file", "f", "", "YAML file with input defaults")
	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputs-file", "f", "", "YAML file with input defaults")
	cmd.Flags().StringP("working-directory", "C", "", "Project directory (overrides the working-directory input)")
}
