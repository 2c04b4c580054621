package main

import "github.com/mcoot/playtime/internal/cli"

func main() {
	cli.Execute()
}
