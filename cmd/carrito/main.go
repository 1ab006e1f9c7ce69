// Command carrito is a terminal shopping-cart simulator.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// flag and argument errors from cobra
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		if exitErr.Err == nil {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Message)
		}
		os.Exit(exitErr.Code)
	}
}
