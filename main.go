package main

import "loanhub/cmd"

func main() {
	cmd.Execute()
}
