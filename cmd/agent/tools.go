package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyzzhao/agent-demos/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	Long:  `Print the tool catalogue exactly as the agent advertises it to the model.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tools.Builtins().Catalogue())
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
