package main

import "github.com/gaurav-prasanna/htmldown/cmd"

func main() {
	cmd.Execute()
}
