package main

import "github.com/relab/quorumsim/internal/cli"

func main() {
	cli.Execute()
}
