package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCommand(os.Stdout).Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
