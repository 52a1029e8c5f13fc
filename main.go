package main

import (
	"github.com/captainwycliffe/omnimed/configuration"
	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/routes"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
	directory.LoadDirectory()
}

func main() {
	//Perform application initialization
	Init()
	r := routes.SetupRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
