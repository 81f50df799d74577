package observability

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	"notification-service/pkg/logger"
)

// StartProfiling exposes the pprof handlers on PPROF_ADDR when set.
// No-op otherwise, so production stays closed by default.
func StartProfiling(service string) {
	addr := os.Getenv("PPROF_ADDR")
	if addr == "" {
		return
	}
	go func() {
		logger.Infof("pprof listener starting service=%s address=%s", service, addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Errorf("pprof listener exited service=%s error=%v", service, err)
		}
	}()
}
