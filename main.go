package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"checkboard/config"
	"checkboard/global"
	"checkboard/initialize"
	"checkboard/server"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	app, err := initialize.Build(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}

	// Log level follows config file edits; everything else needs a restart.
	config.Watch(func(cfg *config.Config) {
		initialize.ApplyLogLevel(cfg.Log.Level)
		global.Logger.Info().Str("level", cfg.Log.Level).Msg("config reloaded")
	})

	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		fmt.Fprintln(os.Stderr, "http server failed:", err)
		os.Exit(1)
	}
	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("checkboard listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	global.Logger.Info().Msg("shutting down")
}
