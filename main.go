package main

import "github.com/labterial/labterial/cmd"

func main() {
	cmd.Execute()
}
