package main

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/ringring/internal/cli"
	ringerrors "github.com/ariel-frischer/ringring/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprint(os.Stderr, ringerrors.FormatError(err))
		os.Exit(1)
	}
}
