package main

import (
	"booking_service/startup"
	"booking_service/startup/config"
)

func main() {
	config := config.NewConfig()
	server := startup.NewServer(config)
	server.Start()
}
