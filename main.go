package main

import "jsonplaceholder/cmd"

func main() {
	cmd.Execute()
}
