package main

import (
	"os"

	"github.com/FCHDev/co2tripcalculator/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run())
}
