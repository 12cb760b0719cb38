package main

import "notenext/cmd"

func main() {
	cmd.Execute()
}
