package main

import "shaktool/cmd"

func main() {
	cmd.Execute()
}
