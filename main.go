package main

import "github.com/chenmo1212/foodorder/cmd"

func main() {
	cmd.Execute()
}
