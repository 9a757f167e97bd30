package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersPlaced counts successful checkouts.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "merchstore_orders_placed_total",
		Help: "Number of orders placed through checkout.",
	})

	// AdminLogins counts admin login attempts by outcome.
	AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "merchstore_admin_logins_total",
		Help: "Number of admin login attempts by result.",
	}, []string{"result"})

	// CartMutations counts cart add/update operations.
	CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "merchstore_cart_mutations_total",
		Help: "Number of cart mutations by operation.",
	}, []string{"op"})
)
