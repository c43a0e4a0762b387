package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", explain(err))
		os.Exit(1)
	}
}
