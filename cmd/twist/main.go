package main

import (
	"fmt"
	"os"

	"github.com/yanickziegler/TWIST/cmd/twist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
