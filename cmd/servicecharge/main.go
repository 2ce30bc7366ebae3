package main

import "github.com/mmynk/servicecharge/internal/cli"

func main() {
	cli.Execute()
}
