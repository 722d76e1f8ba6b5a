package main

import "faster-web/internal/cli"

func main() {
	cli.Execute()
}
