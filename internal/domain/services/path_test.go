package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicService_ShortestPath_Chain(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := mustCreate(t, svc, "root", "c1", "")
	b := mustCreate(t, svc, "b", "c2", a.ID)
	c := mustCreate(t, svc, "c", "c3", b.ID)

	result, err := svc.ShortestPath(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, result.Path)
	assert.Equal(t, 2, result.Distance)

	reverse, err := svc.ShortestPath(ctx, c.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, reverse.Path)
	assert.Equal(t, 2, reverse.Distance)
}

func TestTopicService_ShortestPath_ThroughSharedAncestor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t1 := mustCreate(t, svc, "T1", "c", "")
	t2 := mustCreate(t, svc, "T2", "c", t1.ID)
	t3 := mustCreate(t, svc, "T3", "c", t1.ID)
	t4 := mustCreate(t, svc, "T4", "c", t2.ID)

	result, err := svc.ShortestPath(ctx, t4.ID, t3.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t4.ID, t2.ID, t1.ID, t3.ID}, result.Path)
	assert.Equal(t, 3, result.Distance)
}

func TestTopicService_ShortestPath_Properties(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	r := mustCreate(t, svc, "r", "c", "")
	a := mustCreate(t, svc, "a", "c", r.ID)
	b := mustCreate(t, svc, "b", "c", r.ID)
	a1 := mustCreate(t, svc, "a1", "c", a.ID)
	a2 := mustCreate(t, svc, "a2", "c", a.ID)
	b1 := mustCreate(t, svc, "b1", "c", b.ID)
	b11 := mustCreate(t, svc, "b11", "c", b1.ID)

	all := []string{r.ID, a.ID, b.ID, a1.ID, a2.ID, b1.ID, b11.ID}
	for _, from := range all {
		for _, to := range all {
			forward, err := svc.ShortestPath(ctx, from, to)
			require.NoError(t, err)
			backward, err := svc.ShortestPath(ctx, to, from)
			require.NoError(t, err)

			assert.Equal(t, forward.Distance, backward.Distance, "%s <-> %s", from, to)
			assert.Equal(t, len(forward.Path)-1, forward.Distance)
			assert.Equal(t, from, forward.Path[0])
			assert.Equal(t, to, forward.Path[len(forward.Path)-1])
		}
	}

	result, err := svc.ShortestPath(ctx, a2.ID, b11.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a2.ID, a.ID, r.ID, b.ID, b1.ID, b11.ID}, result.Path)
	assert.Equal(t, 5, result.Distance)
}

func TestTopicService_ShortestPath_SameNode(t *testing.T) {
	svc, _ := newTestService(t)
	a := mustCreate(t, svc, "a", "c", "")

	result, err := svc.ShortestPath(context.Background(), a.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, result.Path)
	assert.Zero(t, result.Distance)
}

func TestTopicService_ShortestPath_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := mustCreate(t, svc, "a", "c", "")
	b := mustCreate(t, svc, "b", "c", "")

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := svc.ShortestPath(ctx, a.ID, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "one or both topics not found")

		_, err = svc.ShortestPath(ctx, "missing", a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("disjoint trees", func(t *testing.T) {
		_, err := svc.ShortestPath(ctx, a.ID, b.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "no path found between topics")
	})
}

func TestPathStep_ExtendDoesNotShareBacking(t *testing.T) {
	base := pathStep{id: "a", path: []string{"a"}}
	left := base.extend("b")
	right := base.extend("c")

	assert.Equal(t, []string{"a", "b"}, left.path)
	assert.Equal(t, []string{"a", "c"}, right.path)
	assert.Equal(t, 1, left.distance)
	assert.Equal(t, []string{"a"}, base.path)
}
