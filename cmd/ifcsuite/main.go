package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ifclabs/ifcsuite/internal/ifcsuitecli"
)

func main() {
	if err := ifcsuitecli.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, ifcsuitecli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "usage: ifcsuite setup [--data-dir data] [--addr :8501] [--force]")
			fmt.Fprintln(os.Stderr, "       ifcsuite run [--env-file .env]")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
