package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/subosito/gotenv"

	"github.com/odpf/shelflife/client/cmd"
)

var errRequestFail = errors.New("unable to complete request successfully")

func main() {
	// a missing .env is fine, the environment may already carry everything
	_ = gotenv.Load()

	command := cmd.New()
	if err := command.Execute(); err != nil {
		fmt.Printf("ERROR: %s\n", err.Error())
		fmt.Println(errRequestFail)
		os.Exit(1)
	}
}
