package exporter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dockwatch/inventory-agent/internal/logger"
)

const (
	pkgName = "PrometheusExporter. "
	cmd     = "EXPORTER"
)

// Exporter serves agent metrics over HTTP for scraping
type Exporter struct {
	port uint16
	reg  *prometheus.Registry
}

func New(port uint16, collectors ...prometheus.Collector) (*Exporter, error) {
	obj := Exporter{
		port: port,
		reg:  prometheus.NewRegistry(),
	}

	for _, c := range collectors {
		if err := obj.reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &obj, nil
}

func (obj *Exporter) Name() string {
	return cmd
}

func (obj *Exporter) Run(ctx context.Context) error {
	handler := promhttp.HandlerFor(obj.reg, promhttp.HandlerOpts{})
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	logger.Debug().Println(pkgName, "exporter starting on port", obj.port)
	srv := http.Server{
		Addr:         fmt.Sprintf(":%d", obj.port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != http.ErrServerClosed {
			logger.Error().Println(pkgName, err)
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Debug().Println(pkgName, "stopping", cmd)
		srv.Close()
	}()

	return nil
}
