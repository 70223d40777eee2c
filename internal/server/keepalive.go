package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron"

	"acceso-portal/pkg/logger"
)

// keepAlive pings the service's own health endpoint so an idle-timeout
// host does not suspend the process. Best effort only.
type keepAlive struct {
	cron   *cron.Cron
	logger *logger.Logger
}

func newKeepAlive(port string, l *logger.Logger) *keepAlive {
	k := &keepAlive{cron: cron.New(), logger: l}

	client := &http.Client{Timeout: 10 * time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%s/health", port)
	_ = k.cron.AddFunc("@every 14m", func() {
		resp, err := client.Get(url)
		if err != nil {
			if k.logger != nil {
				k.logger.Infof("keep-alive ping failed: %s", err)
			}
			return
		}
		resp.Body.Close()
	})

	return k
}

func (k *keepAlive) Start() {
	k.cron.Start()
}

func (k *keepAlive) Stop() {
	k.cron.Stop()
}
