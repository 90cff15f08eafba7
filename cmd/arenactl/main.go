package main

import (
	"arena-scheduler-service/internal/app/delivery/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
