// Command tablegen prints the character category table of the expression lexer
// as Go source.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
