package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "marketbackend"
)

var (
	DropRolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "drop", "rolls_total"),
		Help: "Weighted drop rolls served, by item",
	}, []string{"item"})
	PriceReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "price", "reads_total"),
		Help: "Price table reads; each read advances the persisted walk",
	})
	RelayDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "relay", "deliveries_total"),
		Help: "Log relay delivery outcomes",
	}, []string{"outcome"})
)
