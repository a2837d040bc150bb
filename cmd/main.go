package main

import (
	"context"
	"log"
	"net/http"

	"github.com/saeidalz13/checkerboard/api"
	"github.com/saeidalz13/checkerboard/internal/config"
	mc "github.com/saeidalz13/checkerboard/models/connection"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	bsm := mc.NewBoardSessionManager(cfg.CleanupInterval)
	go bsm.CleanupPeriodically(context.Background())

	mux := http.NewServeMux()
	mux.Handle("GET /checkerboard", api.NewRequestProcessor(bsm))

	log.Printf("Listening to port %d\n", cfg.Port)
	log.Fatalln(http.ListenAndServe(cfg.Addr(), mux))
}
