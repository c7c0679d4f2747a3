package main

import "github.com/xvierd/pomobar/cmd"

func main() {
	cmd.Execute()
}
