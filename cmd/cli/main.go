package main

import "foodgram/cmd/cli/command"

func main() {
	command.Execute()
}
