package main

import (
	"log"
	"os"

	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/pkg/database"

	"github.com/joho/godotenv"
)

// Wipes the persisted ERP document so the next load starts over from the
// seed dataset. Uses the same STORAGE_BACKEND selection as the API server.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Document Store
	var st *store.Store
	switch os.Getenv("STORAGE_BACKEND") {
	case "memory":
		log.Fatal("❌ Nothing to reset: the memory backend never persists")

	case "db":
		backend, err := store.NewDBBackend(database.ConnectDB())
		if err != nil {
			log.Fatalf("❌ Failed to prepare document table: %v", err)
		}
		st = store.New(backend)

	default:
		path := os.Getenv("STORAGE_FILE")
		if path == "" {
			path = "erp-data.json"
		}
		backend, err := store.NewFileBackend(path)
		if err != nil {
			log.Fatalf("❌ Failed to prepare storage file: %v", err)
		}
		st = store.New(backend)
	}

	// 3. Reset
	if err := st.Reset(); err != nil {
		log.Fatalf("❌ Failed to reset document: %v", err)
	}

	doc := st.Load()
	log.Printf("✅ Success! Document reset to seed: %d clients, %d products, %d orders, %d invoices, %d suppliers",
		len(doc.Clients), len(doc.Products), len(doc.Orders), len(doc.Invoices), len(doc.Suppliers))
}
