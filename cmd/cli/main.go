package main

import (
	"fmt"
	"os"
)

func Execute() {
	cmd, a := newRootCmd()
	err := cmd.Execute()
	a.close()
	if err != nil {
		if isUserError(err) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		}
		os.Exit(1)
	}
}

func main() {
	Execute()
}
