// Command arischeck checks a Fitch-style natural-deduction proof file line
// by line and reports which lines are validly justified.
package main

import (
	"os"

	"github.com/your_username/arischeck/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
