package main

import "monkey/cmd"

func main() {
	cmd.Execute()
}
