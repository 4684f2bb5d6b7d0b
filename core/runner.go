package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/EmmanuelEzenwere/SequelSift/logger"
)

const defaultConcurrency = 4

// Runner fans domains out to a bounded pool of pipeline workers and
// collects one record per input. Records keep input order regardless
// of completion order, and one domain's failure or timeout never
// blocks the others.
type Runner struct {
	Pipeline    *Pipeline
	Concurrency int

	// DomainTimeout bounds one domain's whole pipeline, zero means no
	// per-domain limit beyond the caller's context.
	DomainTimeout time.Duration

	Log logger.Interface
}

// Run analyzes every domain and returns the batch.
func (r *Runner) Run(ctx context.Context, domains []string) *Batch {
	started := time.Now().UTC()
	batch := &Batch{
		RunID:     uuid.NewString(),
		StartedAt: started,
		Records:   make([]*CompanyRecord, len(domains)),
	}

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency())
	for i, domain := range domains {
		g.Go(func() error {
			dctx := ctx
			if r.DomainTimeout > 0 {
				var cancel context.CancelFunc
				dctx, cancel = context.WithTimeout(ctx, r.DomainTimeout)
				defer cancel()
			}
			batch.Records[i] = r.Pipeline.AnalyzeDomain(dctx, domain)
			return nil
		})
	}
	_ = g.Wait()

	batch.Elapsed = time.Since(started)
	if r.Log != nil {
		r.Log.Info("batch complete",
			"run_id", batch.RunID,
			"domains", len(domains),
			"failed", batch.Failed(),
			"elapsed", batch.Elapsed.String(),
		)
	}
	return batch
}

func (r *Runner) concurrency() int {
	if r.Concurrency <= 0 {
		return defaultConcurrency
	}
	return r.Concurrency
}
