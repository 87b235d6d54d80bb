package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rajmahal-backend/internal/config"
	"rajmahal-backend/internal/database"
	"rajmahal-backend/internal/handlers"
	"rajmahal-backend/internal/realtime"
	"rajmahal-backend/internal/service"
	"rajmahal-backend/internal/sheets"
	"rajmahal-backend/internal/snapshot"
	"rajmahal-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Pick the store backend. Without DATABASE_URL everything lives in
	// memory and is lost on restart unless mirrored to the spreadsheet.
	var st store.Store
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		migrator.Close()

		pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize postgres store: %v", err)
		}
		defer pgStore.Close()
		st = pgStore
	} else {
		log.Println("Warning: DATABASE_URL not set, using in-memory store")
		st = store.NewMemoryStore()
	}

	// Sheets client; nil URL just means sync endpoints report
	// "not configured".
	var sheetsClient *sheets.Client
	if cfg.SheetsSyncURL != "" {
		sheetsClient = sheets.NewClient(cfg.SheetsSyncURL)
	} else {
		log.Println("Warning: SHEETS_SYNC_URL not set, spreadsheet sync disabled")
	}

	// Local snapshot fallback; losing it only loses the degraded-sync
	// cache, so a failure to open is not fatal.
	var snapshots *snapshot.Store
	if cfg.SnapshotDBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.SnapshotDBPath), 0o755); err != nil {
			log.Printf("Warning: failed to create snapshot directory: %v", err)
		} else if snapshots, err = snapshot.Open(cfg.SnapshotDBPath); err != nil {
			log.Printf("Warning: failed to open snapshot store: %v", err)
			snapshots = nil
		}
	}

	hub := realtime.NewHub()

	ordersService := service.NewOrders(st)
	staffBookService := service.NewStaffBook(st)
	entryStatusService := service.NewEntryStatuses(st)
	syncService := service.NewSync(st, sheetsClient, snapshots)

	ordersHandler := handlers.NewOrdersHandler(ordersService, hub)
	staffBookHandler := handlers.NewStaffBookHandler(staffBookService)
	entryStatusHandler := handlers.NewEntryStatusHandler(entryStatusService, hub)
	syncHandler := handlers.NewSyncHandler(syncService)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", hub.Handle)

	router.GET("/orders", ordersHandler.ListOrders)
	router.GET("/orders/:sno", ordersHandler.GetOrder)
	router.POST("/orders", ordersHandler.CreateOrder)
	router.PUT("/orders/:sno", ordersHandler.UpdateOrder)
	router.DELETE("/orders/:sno", ordersHandler.DeleteOrder)
	router.GET("/orders/:sno/entry-status", entryStatusHandler.ListEntryStatusesForOrder)

	router.GET("/staff-book", staffBookHandler.ListStaffBook)
	router.POST("/staff-book", staffBookHandler.CreateStaffBookEntry)
	router.DELETE("/staff-book/:range", staffBookHandler.DeleteStaffBookEntry)

	router.GET("/entry-status", entryStatusHandler.ListEntryStatuses)
	router.POST("/entry-status", entryStatusHandler.CreateEntryStatus)
	router.DELETE("/entry-status/:id", entryStatusHandler.DeleteEntryStatus)

	router.POST("/sync/external", syncHandler.SyncExternal)
	router.GET("/sync/status", syncHandler.SyncStatus)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
