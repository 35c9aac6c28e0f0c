// Package committer collects Spanner mutations into a plan and applies them.
//
// Repositories return mutations instead of writing; the caller gathers them
// into a CommitPlan and hands the plan to a Committer:
//
//	plan := committer.NewPlan()
//	for i, p := range products {
//	    mut, err := catalog.ProductInsertMut(p, i)
//	    if err != nil {
//	        return err
//	    }
//	    plan.Add(mut)
//	}
//	return committer.NewCommitter(client).Apply(ctx, plan)
package committer

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// DefaultBatchSize bounds the mutations sent in one commit by ApplyInBatches.
const DefaultBatchSize = 500

// CommitPlan is an ordered list of mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Batches splits the plan into consecutive chunks of at most size mutations.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if size < 1 {
		size = DefaultBatchSize
	}
	var batches [][]*spanner.Mutation
	for start := 0; start < len(cp.mutations); start += size {
		end := start + size
		if end > len(cp.mutations) {
			end = len(cp.mutations)
		}
		batches = append(batches, cp.mutations[start:end])
	}
	return batches
}

// Applier is the part of *spanner.Client the committer needs.
type Applier interface {
	Apply(ctx context.Context, ms []*spanner.Mutation, opts ...spanner.ApplyOption) (time.Time, error)
}

// Committer applies CommitPlans.
type Committer struct {
	client Applier
}

// NewCommitter creates a new Committer.
func NewCommitter(client Applier) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically in one commit.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyInBatches commits the plan in chunks of batchSize. Each chunk is atomic; the plan as a whole is not.
// On failure the returned error names the first failed batch; earlier batches stay committed.
func (c *Committer) ApplyInBatches(ctx context.Context, plan *CommitPlan, batchSize int) error {
	for i, batch := range plan.Batches(batchSize) {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return fmt.Errorf("failed to apply batch %d: %w", i, err)
		}
	}
	return nil
}
