package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOutboxScheduler_InvalidSchedule(t *testing.T) {
	s := NewOutboxScheduler("every now and then", func() {})
	require.Error(t, s.Start())
}

func TestOutboxScheduler_RunsJob(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := NewOutboxScheduler("@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, s.Start())
	defer func() { <-s.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
