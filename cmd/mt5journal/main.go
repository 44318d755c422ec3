package main

import "github.com/rustyeddy/mt5journal/internal/cli"

func main() {
	cli.Execute()
}
