package main

import "github.com/nordvik/inkwell/internal/cli"

func main() {
	cli.Execute()
}
