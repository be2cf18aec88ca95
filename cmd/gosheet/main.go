package main

import "github.com/v4rm4n/gosheet/internal/cli"

func main() {
	cli.Execute()
}
