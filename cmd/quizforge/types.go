package main

import (
	"github.com/spf13/cobra"
)

type questionTypeInfo struct {
	Type        string `json:"type" yaml:"type"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Description string `json:"description" yaml:"description"`
	Supported   bool   `json:"supported" yaml:"supported"`
}

var questionTypeList = []questionTypeInfo{
	{
		Type:        "multiple_choice",
		DisplayName: "Multiple Choice",
		Description: "One correct answer among four options",
		Supported:   true,
	},
	{
		Type:        "true_false",
		DisplayName: "True/False",
		Description: "A statement to judge as true or false",
		Supported:   true,
	},
	{
		Type:        "short_answer",
		DisplayName: "Short Answer",
		Description: "A free-text answer checked by keyword overlap",
		Supported:   true,
	},
	{
		Type:        "essay",
		DisplayName: "Essay",
		Description: "Long-form written response; not generated by this version",
		Supported:   false,
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the question types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOutput(cmd, questionTypeList)
	},
}

func init() {
	addOutputFlags(typesCmd)
	rootCmd.AddCommand(typesCmd)
}
