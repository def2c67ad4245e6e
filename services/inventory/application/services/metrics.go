package services

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	itemdomain "github.com/ghuser/inventoryd/services/inventory/domain"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

var opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventory",
	Name:      "operations_total",
	Help:      "Inventory service operations by operation and outcome.",
}, []string{"op", "outcome"})

// outcome buckets an error into a metric label. Expected domain outcomes are
// distinguished from storage failures.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, itemdomain.ErrItemNotFound), errors.Is(err, itemdomain.ErrPhotoNotFound):
		return outcomeNotFound
	case errors.Is(err, itemdomain.ErrInvalidItemName), errors.Is(err, itemdomain.ErrMissingPhoto):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
