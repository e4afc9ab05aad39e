package main

import "github.com/pipeshell/psh/cmd"

func main() {
	cmd.Execute()
}
