package main

import "github.com/okoval/gitgraph/cmd"

func main() {
	cmd.Run()
}
