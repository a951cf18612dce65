package main

import "github.com/tristendillon/codemap/cmd"

func main() {
	cmd.Execute()
}
