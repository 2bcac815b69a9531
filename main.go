package main

import "gameshelf/internal/cli"

func main() {
	cli.Execute()
}
