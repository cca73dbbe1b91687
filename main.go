package main

import "github.com/d6e/fanboi/cmd"

func main() {
	cmd.Execute()
}
