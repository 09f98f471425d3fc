package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "wearable_display/docs"
	"wearable_display/internal/config"
	"wearable_display/internal/display"
	"wearable_display/internal/handlers"
	"wearable_display/internal/hw"
	"wearable_display/internal/logger"
	"wearable_display/internal/render"
	"wearable_display/internal/repository"
	"wearable_display/internal/repository/db"
	"wearable_display/internal/sensorlink"
	"wearable_display/internal/server"
	"wearable_display/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Wearable Display API
// @version                     1.0
// @description                 Display controller for a wrist-worn health monitor.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	configPath := flag.String("config", "", "path to config.yml (default configs/config.yml)")
	listPorts := flag.Bool("list-ports", false, "print serial ports and exit")
	flag.Parse()

	if *listPorts {
		printPorts()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer closeDB(conn, log)

	// hardware or bench stand-ins
	panel, battery, batterySwitch, err := openHardware(cfg.GPIO, log)
	if err != nil {
		log.Fatalw("failed to init gpio", "err", err)
	}

	// renderers: the websocket hub always, the framebuffer when enabled
	hub := render.NewHub(cfg.Display.StreamBuffer)
	renderers := display.MultiRenderer{hub}
	if cfg.FB.Enabled {
		renderers = append(renderers, render.NewFramebuffer(cfg.FB.Width, cfg.FB.Height, deviceFlush(cfg.FB.Device, log)))
	}

	ctrl := display.New(cfg.ControllerConfig(), display.Deps{
		Renderer: renderers,
		Panel:    panel,
		Battery:  battery,
		Log:      log.Named("display"),
	})

	var scenario *service.Scenario
	if cfg.Sim.Enabled && cfg.Sim.Scenario != "" {
		scenario, err = service.LoadScenario(cfg.Sim.Scenario)
		if err != nil {
			log.Fatalw("failed to load scenario", "path", cfg.Sim.Scenario, "err", err)
		}
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Deps{
		Display:   ctrl,
		Battery:   batterySwitch,
		Scenario:  scenario,
		Auth:      service.AuthConfig{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
		Retention: cfg.Journal.Retention,
		Log:       log,
	})
	apiHandler := handlers.NewHandler(services, hub, log.Named("http"))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go ctrl.Run(ctx, cfg.Display.Tick)
	journalDone := make(chan struct{})
	go func() {
		defer close(journalDone)
		services.Journal.Run(ctx, cfg.Journal.Interval)
	}()
	if cfg.Sim.Enabled {
		go services.Simulator.Run(ctx, cfg.Sim.Tick)
	}
	if cfg.Serial.Port != "" {
		link := sensorlink.New(services.Sensors, log.Named("sensorlink"))
		go func() {
			if err := link.RunSerial(ctx, cfg.Serial.Port, cfg.Serial.Baud); err != nil {
				log.Errorw("sensorlink stopped", "port", cfg.Serial.Port, "err", err)
			}
		}()
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("display service started", "port", cfg.Port, "simulator", cfg.Sim.Enabled, "gpio", cfg.GPIO.Enabled)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)

	// the journal's last flush must land before the DB closes
	select {
	case <-journalDone:
	case <-time.After(shutdownTimeout):
		log.Warnw("journal did not finish flushing")
	}
}

// openHardware returns the panel and battery line. batterySwitch is non-nil
// only for the simulated battery, which the API and simulator may drive.
func openHardware(cfg config.GPIOConfig, log *logger.Logger) (display.Panel, display.BatterySource, service.BatterySwitch, error) {
	if !cfg.Enabled {
		sim := &hw.SimBattery{}
		return &hw.SimPanel{}, sim, sim, nil
	}
	if err := hw.InitHost(); err != nil {
		return nil, nil, nil, err
	}
	panel, err := hw.NewGPIOPanel(cfg.PanelPin, cfg.PanelActiveLow)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.BatteryPin == "" {
		log.Warnw("gpio.battery_pin not set; low-battery line is simulated")
		sim := &hw.SimBattery{}
		return panel, sim, sim, nil
	}
	battery, err := hw.NewGPIOBattery(cfg.BatteryPin)
	if err != nil {
		return nil, nil, nil, err
	}
	return panel, battery, nil, nil
}

// deviceFlush writes finished frames to a raw framebuffer device. No device means headless.
func deviceFlush(path string, log *logger.Logger) render.FlushFunc {
	if path == "" {
		return nil
	}
	return func(frame []byte) error {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return err
		}
		if _, err := f.Write(frame); err != nil {
			_ = f.Close()
			log.Debugw("framebuffer write failed", "device", path, "err", err)
			return err
		}
		return f.Close()
	}
}

func closeDB(conn *sql.DB, log *logger.Logger) {
	if err := conn.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}

func printPorts() {
	ports, err := sensorlink.ListPorts()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, p := range ports {
		fmt.Println(p)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines; the journal flushes once more on its way out
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
