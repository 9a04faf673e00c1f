package main

import "referrify/cmd/cli/command"

func main() {
	command.Execute()
}
