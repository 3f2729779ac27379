package main

import (
	"os"

	"github.com/MehmoodAhmad21/Trackme/config"
	"github.com/MehmoodAhmad21/Trackme/routes"
	"github.com/MehmoodAhmad21/Trackme/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
