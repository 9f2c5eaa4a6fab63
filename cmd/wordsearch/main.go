package main

import "github.com/mcoot/wordsearch-go/internal/cli"

func main() {
	cli.Execute()
}
