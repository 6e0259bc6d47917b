package main

import "github.com/theirongolddev/cwatch/cmd"

func main() {
	cmd.Execute()
}
