package main

import "github.com/andrescamacho/wakfudb/internal/adapters/cli"

func main() {
	cli.Execute()
}
