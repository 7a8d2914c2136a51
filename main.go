package main

import "github.com/kamusis/jobmatch-cli/cmd"

func main() {
	cmd.Execute()
}
