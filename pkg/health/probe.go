package health

import (
	"context"
	"sync"
	"time"
)

// ProbePeers dials every peer concurrently and returns one Result per peer,
// in the order given. A peer is retried until it answers or has failed
// cfg.Retries times in a row.
//
// Peers are not validated first; a malformed entry simply fails to dial.
func ProbePeers(ctx context.Context, peers []string, cfg Config) []Result {
	results := make([]Result, len(peers))

	var wg sync.WaitGroup
	for i, peer := range peers {
		wg.Add(1)
		go func(i int, peer string) {
			defer wg.Done()
			checker := NewTCPChecker(peer).WithTimeout(cfg.Timeout)
			results[i] = probe(ctx, checker, cfg)
		}(i, peer)
	}
	wg.Wait()

	return results
}

// Reachable counts the healthy results
func Reachable(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Healthy {
			n++
		}
	}
	return n
}

func probe(ctx context.Context, checker Checker, cfg Config) Result {
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}

	status := NewStatus()
	for {
		status.Update(checker.Check(ctx), cfg)
		if status.Settled() {
			return status.LastResult
		}

		select {
		case <-ctx.Done():
			return status.LastResult
		case <-time.After(cfg.Interval):
		}
	}
}
