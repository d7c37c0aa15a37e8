package main

import "github.com/saya-chit/saya/internal/cli"

func main() {
	cli.Execute()
}
