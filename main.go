package main

import "promodeck/internal/cli"

func main() {
	cli.Execute()
}
