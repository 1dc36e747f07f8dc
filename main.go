package main

import "github.com/negative-space-software/fileshare-cli/cmd"

func main() {
	cmd.Execute()
}
