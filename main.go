package main

import (
	"github.com/peoplelens/attritiond/cmd/app"
)

func main() {
	app.Run()
}
