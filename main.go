package main

import "github.com/theirongolddev/finroi/cmd"

func main() {
	cmd.Execute()
}
