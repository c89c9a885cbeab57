package main

import "github.com/appsdothingsiguess/portfoliosite/cmd"

func main() {
	cmd.Execute()
}
