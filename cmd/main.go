package main

import (
	"os"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/routes"
	"github.com/Yvancedric/partage-recettes-optimisation/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	r.Run(":" + port)
}
