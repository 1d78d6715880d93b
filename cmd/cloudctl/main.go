package main

import "github.com/PriyankaYambem/cloud-manager/internal/cli"

func main() {
	cli.Execute()
}
