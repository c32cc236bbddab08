package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChungNYCU/jtcg-assignment/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "jtcg",
		Short: "jtcg shop customer service",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewSetupCommand(), service.NewChatCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
