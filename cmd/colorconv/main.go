package main

import "github.com/color-game/swatchbook/cli"

func main() {
	cli.Execute()
}
