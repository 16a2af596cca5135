// Package main seeds the site database with defaults and an admin account.
package main

import (
	"context"
	"flag"
	"os"

	seedcmd "github.com/avantiadvisory/avantiag.com/internal/cmd/seed"
	"github.com/avantiadvisory/avantiag.com/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := seedcmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("seed: %v", err)
	}
}
