package main

import "github.com/cumulus13/imgconv/internal/cli"

func main() {
	cli.Execute()
}
