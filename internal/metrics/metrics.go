package metrics

import (
	"strings"

	"storefront/internal/domain/model"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Prometheus は usecase から呼ばれるカウンター群。
type Prometheus struct {
	itemsAdded  prometheus.Counter
	checkouts   *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	codesIssued *prometheus.CounterVec
}

// New はカウンターを作って reg に登録する。
func New(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		itemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Units added to carts.",
		}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Completed checkouts.",
		}, []string{"discount"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_rejections_total",
			Help:      "Rejected checkouts by reason.",
		}, []string{"reason"}),
		codesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_codes_issued_total",
			Help:      "Discount codes issued by source.",
		}, []string{"source"}),
	}

	reg.MustRegister(m.itemsAdded, m.checkouts, m.rejections, m.codesIssued)
	return m
}

func (m *Prometheus) ItemsAdded(qty int64) {
	m.itemsAdded.Add(float64(qty))
}

func (m *Prometheus) CheckoutCompleted(discounted bool) {
	label := "none"
	if discounted {
		label = "applied"
	}
	m.checkouts.WithLabelValues(label).Inc()
}

func (m *Prometheus) CheckoutRejected(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *Prometheus) DiscountCodeIssued(source model.DiscountSource) {
	m.codesIssued.WithLabelValues(strings.ToLower(string(source))).Inc()
}
