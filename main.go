package main

import "github.com/zjrosen/pydev/cmd"

func main() {
	cmd.Execute()
}
