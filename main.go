package main

import (
	"github.com/joho/godotenv"

	"virtual-assistant-be/cmd"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	cmd.Execute()
}
