package main

import "github.com/brogergvhs/manga1000/cmd"

func main() {
	cmd.Execute()
}
