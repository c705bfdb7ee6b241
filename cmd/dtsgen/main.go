package main

import (
	"fmt"
	"os"

	"github.com/teranos/dtsgen/cmd/dtsgen/cmd"
	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/logger"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	logger.Cleanup()

	if err != nil {
		if !cmd.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			for _, hint := range errors.Hints(err) {
				fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
			}
		}
		os.Exit(cmd.ExitCode(err))
	}
}
