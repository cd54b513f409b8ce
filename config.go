package main

import (
	"flag"
	"time"

	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/ship-nav/xmpp"
)

type config struct {
	listen     string
	logLevel   log.Level
	tick       time.Duration
	lowRange   float64
	corsOrigin string
	cpuprofile bool
	xmpp       xmpp.Config
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("ship-nav", flag.ContinueOnError)
	var (
		listen       = fs.String("listen", ":8888", "HTTP listen address")
		logLevel     = fs.String("log-level", "info", "debug, info, warn or error")
		tick         = fs.Int("tick", 5, "fleet dead reckoning interval in seconds, 0 disables")
		lowRange     = fs.Float64("low-range", 5, "alert when a ship has fewer nautical miles left, 0 disables")
		corsOrigin   = fs.String("cors-origin", "*", "allowed CORS origin")
		cpuprofile   = fs.Bool("cpuprofile", false, "write a CPU profile on exit")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return config{}, err
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return config{}, err
	}

	interval := time.Duration(*tick) * time.Second
	if interval < 0 {
		interval = 0
	}

	return config{
		listen:     *listen,
		logLevel:   level,
		tick:       interval,
		lowRange:   *lowRange,
		corsOrigin: *corsOrigin,
		cpuprofile: *cpuprofile,
		xmpp:       xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo},
	}, nil
}
