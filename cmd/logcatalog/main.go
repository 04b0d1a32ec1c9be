package main

import "logcatalog/internal/cli"

func main() {
	cli.Execute()
}
