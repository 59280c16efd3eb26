package main

import "github.com/aalvaropc/rootplot/internal/cli"

func main() {
	cli.Execute()
}
