// Command goshred securely overwrites and deletes files and directories.
package main

import "github.com/gzhole/goshred/internal/cli"

func main() {
	cli.Execute()
}
