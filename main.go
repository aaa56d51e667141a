package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set properties of the predefined Logger, including the log entry prefix
	// and a flag to disable printing the time, source file, and line number.
	log.SetPrefix("lg/ilovesteps: ")
	log.SetFlags(0)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	fmt.Println("Starting gin app...")

	h := &Handler{cfg: cfg}
	router, err := h.newRouter(gin.Default())
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	log.Printf("listening on %s (site %s)", cfg.Addr, cfg.SiteURL)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
