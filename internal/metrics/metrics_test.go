package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_ConcurrentInc(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1000), c.Load())
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry()
	reg.OrdersPlaced.Inc()
	reg.OrdersPlaced.Inc()
	reg.OrderFailures.Inc()
	reg.NotificationsSent.Add(3)

	snap := reg.Snapshot()
	assert.Equal(t, uint64(2), snap["orders_placed"])
	assert.Equal(t, uint64(1), snap["order_failures"])
	assert.Equal(t, uint64(3), snap["notifications_sent"])
	assert.Equal(t, uint64(0), snap["notification_failures"])
}
