package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/calsched/calsched/internal/stubstore"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// stubstore serves the songs API in memory, for running the calendar without
// a real backend.
func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	repository := stubstore.NewRepository()
	handler := stubstore.NewHandler(repository)
	router := stubstore.NewRouter(handler)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infof("stub event store listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
