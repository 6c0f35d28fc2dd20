package main

import "github.com/ryan-gang/raindrop-random/cmd"

func main() {
	cmd.Execute()
}
