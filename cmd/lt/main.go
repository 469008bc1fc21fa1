package main

import "github.com/serhangurakan/life-timer/cmd/lt/root"

func main() {
	root.Execute()
}
