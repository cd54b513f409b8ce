package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/jasonlvhit/gocron"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/ship-nav/api"
	"github.com/a-bouts/ship-nav/api/model"
	"github.com/a-bouts/ship-nav/fleet"
	"github.com/a-bouts/ship-nav/xmpp"
)

func main() {

	c, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(c.logLevel)

	if c.cpuprofile {
		defer profile.Start().Stop()
	}

	var notifier fleet.Notifier
	x := xmpp.Xmpp{Config: c.xmpp}
	if x.Enabled() {
		notifier = x
	} else {
		log.Info("xmpp not configured, low range alerts disabled")
	}

	f := fleet.New(c.lowRange, notifier)

	if c.tick > 0 {
		s := gocron.NewScheduler()
		hours := c.tick.Hours()
		s.Every(uint64(c.tick.Seconds())).Seconds().Do(f.Advance, hours)
		s.Start()
		defer s.Clear()
	}

	router := api.InitServer(f, model.DefaultMapConfig())

	w := log.StandardLogger().Writer()
	defer w.Close()

	var h http.Handler = router
	h = handlers.LoggingHandler(w, h)
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{c.corsOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger()), handlers.PrintRecoveryStack(true))(h)

	log.Infof("Start server on %s", c.listen)
	if err := http.ListenAndServe(c.listen, h); err != nil {
		log.Error(err)
	}
}
