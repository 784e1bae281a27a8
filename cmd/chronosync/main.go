package main

import "github.com/chronosync/chronosync/internal/cli"

func main() {
	cli.Execute()
}
