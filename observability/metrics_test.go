package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Register_And_Count(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	subscribers := 3
	RegisterSubscribers(reg, func() int { return subscribers })

	metrics.MessagesAccepted.Inc()
	metrics.RoomsClosed.WithLabelValues("quota").Inc()
	metrics.MessagesRejected.WithLabelValues("NOT_PARTICIPANT").Add(2)

	req.Equal(1.0, testutil.ToFloat64(metrics.MessagesAccepted))
	req.Equal(1.0, testutil.ToFloat64(metrics.RoomsClosed.WithLabelValues("quota")))
	req.Equal(2.0, testutil.ToFloat64(metrics.MessagesRejected.WithLabelValues("NOT_PARTICIPANT")))

	count, err := testutil.GatherAndCount(reg, "chat_room_live_subscriptions")
	req.NoError(err)
	req.Equal(1, count)
}
