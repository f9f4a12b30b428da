package main

import "plotthemes/internal/cli"

func main() {
	cli.Execute()
}
