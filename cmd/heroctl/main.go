package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/heroactions/cmd/heroctl/commands"
)

func main() {
	if err := commands.NewRootCmd(commands.OpenRedisStores).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
