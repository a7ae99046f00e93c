package main

import "github.com/notargets/gofd/cmd"

func main() {
	cmd.Execute()
}
