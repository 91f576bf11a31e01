package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
)

type config struct {
	tcpPort  int
	httpPort int
	kernel   mandel.Kernel
	region   mandel.Region
	workers  int
	static   string
}

func parseFlags() (config, error) {
	var (
		cfg    config
		kernel string
		region string
	)
	flag.IntVar(&cfg.tcpPort, "tcp", 8081, "tcp port for cli clients")
	flag.IntVar(&cfg.httpPort, "http", 8080, "http port serving the web client and websocket endpoint")
	flag.StringVar(&kernel, "kernel", "escape", "iteration kernel: escape or distance")
	flag.StringVar(&region, "region", "full", fmt.Sprintf("start region, one of %v", mandel.RegionNames()))
	flag.IntVar(&cfg.workers, "workers", 0, "goroutines per render, 0 for GOMAXPROCS")
	flag.StringVar(&cfg.static, "static", "./static", "directory with index.html, wasm_exec.js and webclient.wasm")
	flag.Parse()

	var err error
	if cfg.kernel, err = mandel.ParseKernel(kernel); err != nil {
		return cfg, err
	}
	if cfg.region, err = mandel.LookupRegion(region); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// main is the entry point for the Mandelbrot server.
// Every connected client gets its own session; renders run here and finished frames are pushed back.
func main() {
	cfg, err := parseFlags()
	if err != nil {
		log.Fatalf("flags: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(cfg config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pipeline := mandel.NewPipeline(cfg.kernel, mandel.WithPipelineWorkers(cfg.workers), mandel.WithLogging())
	sessions := &sessionServer{renderer: pipeline, kernel: cfg.kernel, home: cfg.region}

	// irpc server with onConnect hook giving every client its own session
	irpcServer := irpc.NewServer(irpc.WithOnConnect(sessions.onConnect))

	// TCP
	log.Printf("tcp listening on port: %d", cfg.tcpPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.tcpPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, cfg.httpPort, cfg.static, pipeline)

	// httpServer provides index.html, main.wasm, one-shot png renders and the websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			log.Printf("irpcServer.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			log.Printf("irpcServer.Serve ws: %v", err)
		}
	}()

	log.Printf("mb server (%s kernel, region %s) waiting for tcp and websocket connections", cfg.kernel, cfg.region)
	<-ctx.Done()

	log.Printf("shutting down")
	// closes both listeners and every client endpoint
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
