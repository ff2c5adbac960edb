package main

import "github.com/passa-a-bola/passa-web/internal/cli"

func main() {
	cli.Execute()
}
