package client

import (
	"io"
	"time"
)

// progressReader counts bytes as the request body is consumed by the
// transport and reports loaded/total through the callback.
type progressReader struct {
	r      io.Reader
	total  int64
	loaded int64
	report func(loaded, total int64)
}

func newProgressReader(r io.Reader, total int64, report func(loaded, total int64)) *progressReader {
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		if p.report != nil && p.total > 0 {
			p.report(p.loaded, p.total)
		}
	}
	return n, err
}

// speedSampler recomputes instantaneous throughput at most once per
// interval, smoothing the noisy per-read signal into a readable rate.
// The clock is injectable for tests.
type speedSampler struct {
	interval   time.Duration
	lastLoaded int64
	lastTime   time.Time
	now        func() time.Time
}

func newSpeedSampler(interval time.Duration) *speedSampler {
	s := &speedSampler{interval: interval, now: time.Now}
	s.lastTime = s.now()
	return s
}

// Sample returns bytes/sec since the previous accepted sample. ok is false
// while the interval has not yet elapsed.
func (s *speedSampler) Sample(loaded int64) (bps float64, ok bool) {
	current := s.now()
	elapsed := current.Sub(s.lastTime)
	if elapsed <= s.interval {
		return 0, false
	}
	bps = float64(loaded-s.lastLoaded) / elapsed.Seconds()
	s.lastLoaded = loaded
	s.lastTime = current
	return bps, true
}
