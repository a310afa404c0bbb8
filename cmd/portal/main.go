package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cleanrecord/internal/portal/client"
	"cleanrecord/internal/portal/prefs"
	"cleanrecord/internal/portal/tui"
)

var _ tui.API = (*client.Client)(nil)

func main() {
	os.Exit(run())
}

func run() int {
	prefsPath := flag.String("prefs", prefs.DefaultPath(), "preferences file")
	apiURL := flag.String("api", "", "API base URL (overrides preferences)")
	token := flag.String("token", "", "bearer token (overrides preferences)")
	save := flag.Bool("save", false, "store -api and -token in the preferences file")
	liveSeconds := flag.Int("live-poll", 0, "live stream poll interval in seconds (optional, defaults to 30s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p, err := prefs.Load(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)

		return 1
	}
	if v := strings.TrimSpace(*apiURL); v != "" {
		p.APIURL = v
	}
	if v := strings.TrimSpace(*token); v != "" {
		p.Token = v
	}
	if *save {
		if err := prefs.Save(*prefsPath, p); err != nil {
			fmt.Fprintf(os.Stderr, "portal: %v\n", err)

			return 1
		}
	}
	if p.Token == "" {
		fmt.Fprintln(os.Stderr, "portal: no token; pass -token or set token in", *prefsPath)

		return 2
	}

	api, err := client.New(p.APIURL, p.Token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)

		return 1
	}

	whoCtx, whoCancel := context.WithTimeout(ctx, 10*time.Second)
	me, err := api.WhoAmI(whoCtx)
	whoCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "portal: sign in failed: %v\n", err)

		return 1
	}

	opts := tui.Options{Context: ctx, API: api}
	if *liveSeconds > 0 {
		opts.LiveInterval = time.Duration(*liveSeconds) * time.Second
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "portal (%s): %v\n", me.Email, err)

		return 1
	}

	return 0
}
