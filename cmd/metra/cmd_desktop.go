package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibomiri431-oss/metra-feer/internal/server"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

// metra desktop: run the backend and open it in a native browser window.
// Same server as `serve`, different launch: the HTTP listener runs in a
// goroutine while the foreground opens an app-mode window and waits for a
// signal.
var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Start the server and open the shop in an app window",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.Boot()
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() { errCh <- s.Start() }()

		url := "http://127.0.0.1" + s.Addr()
		if err := waitReady(s.Addr(), 10*time.Second); err != nil {
			return err
		}
		if err := openWindow(url); err != nil {
			logger.Warn("could not open a window, open the URL manually", "url", url, "error", err)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.Shutdown(ctx)
		}
	},
}

// waitReady polls the listen address until it accepts TCP connections.
func waitReady(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", "127.0.0.1"+addr, 250*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not become ready on %s within %s", addr, timeout)
}

// openWindow opens url in a chromeless app window when a Chromium-family
// browser is installed, otherwise falls back to the default browser.
func openWindow(url string) error {
	for _, browser := range []string{"chromium", "chromium-browser", "google-chrome", "chrome", "msedge"} {
		if path, err := exec.LookPath(browser); err == nil {
			return exec.Command(path, "--app="+url).Start()
		}
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
