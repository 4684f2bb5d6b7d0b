package main

import "github.com/EmmanuelEzenwere/SequelSift/cmd"

func main() {
	cmd.Execute()
}
