package main

import (
	"os"

	"github.com/AlexZinkM/mini-dapp/cmd/minidapp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
