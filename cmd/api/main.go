package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/cinemadiroma/booking-gateway/internal/app"
)

func main() {
	godotenv.Load()

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
