package main

import (
	"os"

	"github.com/coachly/coach-backend/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
