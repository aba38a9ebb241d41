package main

import "platform-tools/internal/cli"

func main() {
	cli.Execute()
}
