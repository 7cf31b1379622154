package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/TWRT/ops-dashboard/internal/api"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	clickUpToken := os.Getenv("CLICKUP_API_TOKEN")
	if clickUpToken == "" {
		// Not fatal: the proxy reports the missing credential per request.
		log.Println("⚠️  CLICKUP_API_TOKEN não configurado, o dashboard vai renderizar vazio")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := api.SetupRouter(clickUpToken)

	fmt.Printf("🚀 Dashboard rodando em http://localhost:%s\n", port)
	fmt.Println("📝 Endpoints disponíveis:")
	fmt.Println("   GET /api/dashboard/executive - Visão geral")
	fmt.Println("   GET /api/dashboard/team      - Performance do time")
	fmt.Println("   GET /api/dashboard/clients   - Lupa por cliente")
	fmt.Println("   ANY /api/clickup/*           - Proxy ClickUp")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Erro ao iniciar servidor:", err)
	}
}
