// Command rmux is a terminal multiplexer.
package main

import (
	"fmt"
	"os"

	"rmux/internal/cmd"
	"rmux/internal/termstyle"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, termstyle.RedX()+" "+termstyle.Red(err.Error()))
		os.Exit(1)
	}
}
