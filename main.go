package main

import "github.com/keyatlas/keyatlas/cmd"

func main() {
	cmd.Execute()
}
