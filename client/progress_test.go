package client

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReaderReportsLoadedAndTotal(t *testing.T) {
	var loads []int64
	var lastTotal int64
	r := newProgressReader(strings.NewReader("0123456789"), 10, func(loaded, total int64) {
		loads = append(loads, loaded)
		lastTotal = total
	})

	buf := make([]byte, 4)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{4, 8, 10}, loads)
	assert.Equal(t, int64(10), lastTotal)
}

func TestProgressReaderSilentWithoutTotal(t *testing.T) {
	called := false
	r := newProgressReader(strings.NewReader("data"), 0, func(loaded, total int64) {
		called = true
	})
	_, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.False(t, called, "no callbacks when the total size is unknown")
}

func TestSpeedSamplerThrottlesToInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	s := newSpeedSampler(500 * time.Millisecond)
	s.now = func() time.Time { return clock }
	s.lastTime = clock

	// 100ms later: below the interval, no sample.
	clock = clock.Add(100 * time.Millisecond)
	_, ok := s.Sample(1000)
	assert.False(t, ok)

	// 600ms after start: 2048 bytes over 0.6s.
	clock = time.Unix(0, 0).Add(600 * time.Millisecond)
	bps, ok := s.Sample(2048)
	require.True(t, ok)
	assert.InDelta(t, 2048.0/0.6, bps, 0.01)

	// The sampler rebased: another 600ms and 1024 more bytes.
	clock = clock.Add(600 * time.Millisecond)
	bps, ok = s.Sample(3072)
	require.True(t, ok)
	assert.InDelta(t, 1024.0/0.6, bps, 0.01)
}

func TestSpeedSamplerNoSampleAtExactInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	s := newSpeedSampler(500 * time.Millisecond)
	s.now = func() time.Time { return clock }
	s.lastTime = clock

	clock = clock.Add(500 * time.Millisecond)
	_, ok := s.Sample(4096)
	assert.False(t, ok, "interval must be strictly exceeded")
}
