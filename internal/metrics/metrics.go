// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BooksIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_books_issued_total",
		Help: "Books successfully issued.",
	})
	BooksReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_books_returned_total",
		Help: "Books successfully returned.",
	})
	FinesSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_fines_settled_total",
		Help: "Loan records whose fines were settled by a payment.",
	})
	FineAmountSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_fine_amount_settled_rupees_total",
		Help: "Total fine amount cleared by payments, in rupees.",
	})
	OverdueNoticesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_overdue_notices_sent_total",
		Help: "One-time overdue notices delivered by the sweep.",
	})
	SweepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_sweep_errors_total",
		Help: "Errors encountered during overdue sweep passes.",
	})
)
