// Command furl parses a URL, applies mutations given by flags and prints the result.
//
//	furl --add-path b --set-arg x=2 --remove-arg y 'http://example.com/a/?x=1&y=2'
//	furl --json 'https://user@пример.рф:8443/a?b=c#d'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "furl:", err)
		os.Exit(1)
	}
}
