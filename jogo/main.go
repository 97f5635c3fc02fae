package main

import (
	"log"

	"TerraViva/jogo/internal/app"
	"TerraViva/shared/config"
)

func main() {
	log.Println("[TerraViva] Iniciando...")

	cfg := config.Load()
	app.New(cfg).Run()

	log.Println("[TerraViva] Encerrado.")
}
