package main

import "github.com/duckpond/quackchat/internal/cli"

func main() {
	cli.Execute()
}
