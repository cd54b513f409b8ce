// Package xmpp delivers fleet alerts as XMPP chat messages.
package xmpp

import (
	"crypto/tls"
	"errors"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

var ErrMissingConfig = errors.New("missing xmpp config")

type (
	// Config for the notifier. Host defaults to the JID's domain.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.SplitN(parts[1], "/", 2)[0]
}

// Enabled reports whether enough of the config is set to send anything.
func (x Xmpp) Enabled() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func (x Xmpp) options() (xmpp.Options, error) {
	if !x.Enabled() {
		return xmpp.Options{}, ErrMissingConfig
	}

	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}
	if len(host) == 0 {
		return xmpp.Options{}, ErrMissingConfig
	}

	return xmpp.Options{
		Host:     host,
		User:     x.Config.Jid,
		Password: x.Config.Password,
		NoTLS:    true,
		StartTLS: true,
		TLSConfig: &tls.Config{
			ServerName: serverName(x.Config.Jid),
		},
		Session:       false,
		Status:        "xa",
		StatusMessage: "fleet watch",
	}, nil
}

// Send opens a session, delivers message to Config.To and closes it.
func (x Xmpp) Send(message string) error {
	options, err := x.options()
	if err != nil {
		log.Warn(err)
		return err
	}

	log.WithField("host", options.Host).Debug("xmpp: create client")
	talk, err := options.NewClient()
	if err != nil {
		log.WithError(err).Error("xmpp: connect")
		return err
	}
	defer talk.Close()

	log.WithField("to", x.Config.To).Debug("xmpp: send message")
	_, err = talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message})
	return err
}
