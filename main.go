package main

import "github.com/yalgashev/survey/cmd"

func main() {
	cmd.Execute()
}
