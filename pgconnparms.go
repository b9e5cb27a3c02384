package main

import (
	"os"

	"github.com/lesovsky/pgconnparms/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
