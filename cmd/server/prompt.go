package main

import (
	"fmt"

	"github.com/BerylCAtieno/careerpath-agent/internal/planner"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the model prompt for a profile without calling the model",
	RunE:  runPrompt,
}

var (
	promptProfile string
	promptSchema  bool
)

func init() {
	promptCmd.Flags().StringVarP(&promptProfile, "profile", "i", "", "Path to the student profile JSON")
	promptCmd.Flags().BoolVar(&promptSchema, "schema", false, "Also print the report JSON Schema")
	_ = promptCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(promptProfile)
	if err != nil {
		return err
	}

	prompt, err := planner.BuildPrompt(profile)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), prompt)

	if promptSchema {
		fmt.Fprintln(cmd.OutOrStdout())
		return writeJSON(cmd.OutOrStdout(), planner.ReportSchema.JSONSchema())
	}
	return nil
}
