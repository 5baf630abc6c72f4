package main

import "github.com/theirongolddev/creditsim/cmd"

func main() {
	cmd.Execute()
}
