package committer

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingApplier struct {
	calls  [][]*spanner.Mutation
	failAt int
}

func (r *recordingApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	r.calls = append(r.calls, ms)
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return time.Time{}, errors.New("session expired")
	}
	return time.Now(), nil
}

func mutations(n int) []*spanner.Mutation {
	out := make([]*spanner.Mutation, n)
	for i := range out {
		out[i] = spanner.Delete("products", spanner.Key{i})
	}
	return out
}

func TestCommitPlan_AddIgnoresNil(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	plan.AddMultiple(append(mutations(2), nil))

	assert.Equal(t, 2, plan.Count())
	assert.False(t, plan.IsEmpty())
}

func TestCommitPlan_Batches(t *testing.T) {
	plan := NewPlan()
	plan.AddMultiple(mutations(7))

	batches := plan.Batches(3)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 3)
	assert.Len(t, batches[1], 3)
	assert.Len(t, batches[2], 1)

	assert.Len(t, plan.Batches(0), 1)
	assert.Empty(t, NewPlan().Batches(3))
}

func TestCommitter_Apply(t *testing.T) {
	t.Run("empty plan is a no-op", func(t *testing.T) {
		applier := &recordingApplier{}
		require.NoError(t, NewCommitter(applier).Apply(context.Background(), NewPlan()))
		assert.Empty(t, applier.calls)
	})

	t.Run("single commit", func(t *testing.T) {
		applier := &recordingApplier{}
		plan := NewPlan()
		plan.AddMultiple(mutations(4))

		require.NoError(t, NewCommitter(applier).Apply(context.Background(), plan))
		require.Len(t, applier.calls, 1)
		assert.Len(t, applier.calls[0], 4)
	})

	t.Run("error is wrapped", func(t *testing.T) {
		applier := &recordingApplier{failAt: 1}
		plan := NewPlan()
		plan.AddMultiple(mutations(1))

		err := NewCommitter(applier).Apply(context.Background(), plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply commit plan")
	})
}

func TestCommitter_ApplyInBatches(t *testing.T) {
	applier := &recordingApplier{failAt: 2}
	plan := NewPlan()
	plan.AddMultiple(mutations(5))

	err := NewCommitter(applier).ApplyInBatches(context.Background(), plan, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 1")
	assert.Len(t, applier.calls, 2)
}
