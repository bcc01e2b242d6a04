package main

import "twm/cmd"

func main() {
	cmd.Execute()
}
