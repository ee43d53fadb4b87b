// Command dbtables builds and edits SQLite table schemas from terminal prompts.
package main

import "github.com/Jirwin42/attendence/internal/cli"

func main() {
	cli.Execute()
}
