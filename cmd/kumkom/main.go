package main

import "github.com/mcoot/kumkom/internal/cli"

func main() {
	cli.Execute()
}
