// Command lamp is a devotional Bible reader for the terminal.
package main

import "github.com/mesh-intelligence/lamp/internal/cli"

func main() {
	cli.Execute()
}
