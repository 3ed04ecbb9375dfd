package proof

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Verdict is the outcome of checking one derived line.
type Verdict struct {
	Line LineRef
	Err  error
}

// CheckAll fans every derived line of p out to check concurrently over an
// errgroup, matching spec.md §5's resource policy: the core stays
// synchronization-free and the driver owns all concurrency against a
// read-only Proof snapshot. Premises are skipped -- they carry no
// justification to validate. Results are returned in line order regardless
// of completion order.
func CheckAll(ctx context.Context, p *Proof, check func(l LineRef) error) ([]Verdict, error) {
	n := p.LineCount()
	verdicts := make([]Verdict, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		l := LineRef(i)
		premise, _ := p.LookupPremise(l)
		if premise {
			verdicts[i] = Verdict{Line: l}
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			verdicts[i] = Verdict{Line: l, Err: check(l)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
