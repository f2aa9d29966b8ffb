package main

import (
	"quakerfm.dev/market-next/cmd/app"
)

func main() {
	app.Run()
}
