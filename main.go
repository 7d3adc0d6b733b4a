package main

import "github.com/lwc24/gofoam/cmd"

func main() {
	cmd.Execute()
}
