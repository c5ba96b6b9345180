package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesOnEmptyBoard(t *testing.T) {
	cands := GenerateCandidates(mustGrid(t, 3))
	// 3 rows x 2 horizontal slots + 2 rows x 3 vertical slots
	require.Len(t, cands, 12)
	assert.Equal(t, PlaceAction(hw(0, 0)), cands[0].Action)
	assert.Equal(t, PlaceAction(vw(0, 0)), cands[1].Action)
	assert.Equal(t, PlaceAction(hw(2, 1)), cands[len(cands)-1].Action)
	for _, c := range cands {
		assert.Equal(t, ActionPlace, c.Action.Type)
		assert.Equal(t, KindBlocking, c.Action.Wall.Kind)
	}
}

func TestCandidatesSkipTakenKeysAndMutateExisting(t *testing.T) {
	invisible := vw(1, 1)
	invisible.Kind = KindInvisible
	g := mustGrid(t, 3, invisible, hw(0, 0))

	cands := GenerateCandidates(g)
	require.Len(t, cands, 12)

	for _, c := range cands[:10] {
		require.Equal(t, ActionPlace, c.Action.Type)
		assert.NotEqual(t, hw(0, 0).Key(), c.Action.Wall.Key())
		assert.NotEqual(t, invisible.Key(), c.Action.Wall.Key())
	}
	assert.Equal(t, MutateAction(hw(0, 0).Key(), KindInvisible), cands[10].Action)
	assert.Equal(t, MutateAction(invisible.Key(), KindBouncing), cands[11].Action)
}

func TestCandidatesAreIdempotent(t *testing.T) {
	g := mustGrid(t, 7, hw(3, 3), vw(0, 6), hw(6, 0))
	first := GenerateCandidates(g)
	second := GenerateCandidates(g)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, g.Len())
}

func TestCandidatesOnFullBoardAreMutationsOnly(t *testing.T) {
	g := mustGrid(t, 2, hw(0, 0), hw(1, 0), vw(0, 0), vw(0, 1))
	cands := GenerateCandidates(g)
	require.Len(t, cands, 4)
	for _, c := range cands {
		assert.Equal(t, ActionMutate, c.Action.Type)
		assert.Equal(t, KindInvisible, c.Action.NewKind)
	}
}
