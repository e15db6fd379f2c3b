package main

import "github.com/nulvox/TabConverter/cmd"

func main() {
	cmd.Execute()
}
