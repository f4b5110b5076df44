package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-erp-dashboard/internal/handler"
	"go-erp-dashboard/internal/service"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Document Store
	st := newStore()

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	clientService := service.NewClientService(st, wsHub)
	productService := service.NewProductService(st, wsHub)
	orderService := service.NewOrderService(st, wsHub)
	invoiceService := service.NewInvoiceService(st, wsHub)
	supplierService := service.NewSupplierService(st, wsHub)
	dashService := service.NewDashboardService(st)
	dataService := service.NewDataService(st, wsHub)

	clientHandler := handler.NewClientHandler(clientService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	dashHandler := handler.NewDashboardHandler(dashService)
	dataHandler := handler.NewDataHandler(dataService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "ERP Dashboard v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 6. Routes
	api := app.Group("/api/v1")

	api.Get("/dashboard/stats", dashHandler.GetStats)

	api.Get("/data", dataHandler.GetDocument)
	api.Post("/reset", dataHandler.Reset)

	api.Get("/clients", clientHandler.List)
	api.Post("/clients", clientHandler.Create)
	api.Put("/clients/:id", clientHandler.Update)
	api.Delete("/clients/:id", clientHandler.Delete)

	api.Get("/products", productHandler.List)
	api.Get("/products/low-stock", productHandler.LowStock)
	api.Post("/products", productHandler.Create)
	api.Put("/products/:id", productHandler.Update)
	api.Delete("/products/:id", productHandler.Delete)

	api.Get("/orders", orderHandler.List)
	api.Post("/orders", orderHandler.Create)
	api.Put("/orders/:id", orderHandler.Update)
	api.Delete("/orders/:id", orderHandler.Delete)

	api.Get("/invoices", invoiceHandler.List)
	api.Post("/invoices", invoiceHandler.Create)
	api.Put("/invoices/:id", invoiceHandler.Update)
	api.Delete("/invoices/:id", invoiceHandler.Delete)

	api.Get("/suppliers", supplierHandler.List)
	api.Post("/suppliers", supplierHandler.Create)
	api.Put("/suppliers/:id", supplierHandler.Update)
	api.Delete("/suppliers/:id", supplierHandler.Delete)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// newStore picks the storage backend from STORAGE_BACKEND: "file" (default),
// "db" (sqlite file, or postgres when DATABASE_URL is set) or "memory"
// (nothing persisted, every restart comes back to the seed).
func newStore() *store.Store {
	switch os.Getenv("STORAGE_BACKEND") {
	case "memory":
		log.Println("Storage: in-memory (non-persistent)")
		return store.New(store.NewMemoryBackend())

	case "db":
		db := database.ConnectDB()
		backend, err := store.NewDBBackend(db)
		if err != nil {
			log.Fatal("Failed to prepare document table: ", err)
		}
		log.Println("Storage: database")
		return store.New(backend)

	default:
		path := os.Getenv("STORAGE_FILE")
		if path == "" {
			path = "erp-data.json"
		}
		backend, err := store.NewFileBackend(path)
		if err != nil {
			log.Fatal("Failed to prepare storage file: ", err)
		}
		log.Println("Storage: file ", path)
		return store.New(backend)
	}
}
