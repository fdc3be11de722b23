package main

import "github.com/notargets/neumesh/cmd"

func main() {
	cmd.Execute()
}
