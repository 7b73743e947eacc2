package bed_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/companion/bed"
	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
	"github.com/katalvlaran/companion/combo"
)

func garden(t *testing.T) *benefit.Graph {
	t.Helper()
	b, err := benefit.NewBuilder()
	require.NoError(t, err)
	for _, r := range [][3]string{
		{"Basil", "Tomato", "repels pests"},
		{"Marigold", "Tomato", "deters nematodes"},
		{"Basil", "Pepper", ""},
		{"Tomato", "Carrot", ""},
		{"Carrot", "Tomato", ""},
		{"Nasturtium", "Squash", "traps aphids"},
		{"Corn", "Bean", "trellis"},
		{"Bean", "Corn", "fixes nitrogen"},
		{"Bean", "Squash", "fixes nitrogen"},
		{"Squash", "Corn", "shades weeds"},
	} {
		require.NoError(t, b.Add(r[0], r[1], r[2]))
	}
	require.NoError(t, b.AddPlant("Mint"))

	return b.Build()
}

func plan(t *testing.T, g *benefit.Graph, preferred []string, opts ...candidate.Option) []bed.GardenBed {
	t.Helper()
	ranked, err := candidate.Generate(g, preferred, opts...)
	require.NoError(t, err)

	return bed.Partition(ranked)
}

func TestPartition_BasilTomato(t *testing.T) {
	b, err := benefit.NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Add("Basil", "Tomato", "repels pests"))

	beds := plan(t, b.Build(), []string{"Basil", "Tomato"}, candidate.WithMaxGroupSize(4))

	want := []bed.GardenBed{{
		Members: []bed.Member{
			{Plant: "Basil", Role: bed.Preferred},
			{Plant: "Tomato", Role: bed.Preferred},
		},
		Score:   1,
		Effects: []benefit.Edge{{Helper: "Basil", Helped: "Tomato", Effect: "repels pests"}},
	}}
	if diff := cmp.Diff(want, beds); diff != "" {
		t.Fatalf("Partition mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition_Empty(t *testing.T) {
	require.Empty(t, bed.Partition(nil))
	require.Empty(t, plan(t, garden(t), nil))
}

func TestPartition_IsolatedPlantSingleton(t *testing.T) {
	beds := plan(t, garden(t), []string{"Mint"})
	require.Len(t, beds, 1)
	require.Equal(t, []bed.Member{{Plant: "Mint", Role: bed.Preferred}}, beds[0].Members)
	require.Zero(t, beds[0].Score)
	require.Empty(t, beds[0].Effects)
}

func TestPartition_MixedSelection(t *testing.T) {
	beds := plan(t, garden(t), []string{"Basil", "Tomato", "Mint"})
	require.Len(t, beds, 2)

	first := beds[0]
	require.Equal(t, combo.Combination{"Basil", "Carrot", "Tomato"}, first.Plants())
	require.Equal(t, []string{"Basil", "Tomato"}, first.Preferred())
	require.Equal(t, []string{"Carrot"}, first.Recommended())
	require.Equal(t, "Carrot", first.Recommendation)
	require.Equal(t, 2, first.Score)
	require.Equal(t, []benefit.Edge{
		{Helper: "Basil", Helped: "Tomato", Effect: "repels pests"},
		{Helper: "Carrot", Helped: "Tomato"},
	}, first.Effects)

	require.Equal(t, combo.Combination{"Mint"}, beds[1].Plants())
	require.Empty(t, beds[1].Recommended())
}

func TestPartition_ThreeSisters(t *testing.T) {
	beds := plan(t, garden(t), []string{"Corn", "Bean", "Squash"})
	require.Len(t, beds, 1)

	// the three sisters score 4 among themselves; Nasturtium adds 1 by helping Squash
	require.Equal(t, combo.Combination{"Bean", "Corn", "Nasturtium", "Squash"}, beds[0].Plants())
	require.Equal(t, []string{"Nasturtium"}, beds[0].Recommended())
	require.Equal(t, 5, beds[0].Score)
	require.Len(t, beds[0].Effects, beds[0].Score)
}

// TestPartition_PreferredJoiner checks that a bed made only of preferred
// plants carries every edge between them.
func TestPartition_PreferredJoiner(t *testing.T) {
	g := garden(t)
	beds := plan(t, g, []string{"Tomato", "Carrot"}, candidate.WithMaxGroupSize(2))
	require.Len(t, beds, 1)

	scorer, err := combo.NewScorer(g)
	require.NoError(t, err)
	direct := scorer.Score(combo.New("Carrot", "Tomato"))

	want := bed.GardenBed{
		Members: []bed.Member{
			{Plant: "Carrot", Role: bed.Preferred},
			{Plant: "Tomato", Role: bed.Preferred},
		},
		Score:   direct.Score,
		Effects: direct.Effects,
	}
	if diff := cmp.Diff(want, beds[0]); diff != "" {
		t.Fatalf("bed mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, beds[0].Recommended())
}

// TestPartition_EveryPreferredPlaced checks that a preferred plant is never
// lost when its only helper is claimed by another bed.
func TestPartition_EveryPreferredPlaced(t *testing.T) {
	g := garden(t)
	preferred := []string{"Tomato", "Pepper", "Squash", "Mint", "Carrot"}
	beds := plan(t, g, preferred, candidate.WithMaxGroupSize(2))

	placed := map[string]bool{}
	for _, b := range beds {
		for _, p := range b.Preferred() {
			placed[p] = true
		}
	}
	for _, p := range preferred {
		require.True(t, placed[p], "preferred plant %s not placed", p)
	}
}

func TestPartition_DisjointAndIdempotent(t *testing.T) {
	g := garden(t)
	all := g.AllPlants()

	for n := candidate.MinGroupSize; n <= candidate.MaxGroupSizeLimit; n++ {
		ranked, err := candidate.Generate(g, all, candidate.WithMaxGroupSize(n))
		require.NoError(t, err)

		first := bed.Partition(ranked)
		second := bed.Partition(ranked)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("n=%d: not idempotent (-first +second):\n%s", n, diff)
		}

		for i := range first {
			require.LessOrEqual(t, len(first[i].Members), n)
			require.Len(t, first[i].Effects, first[i].Score)
			for j := i + 1; j < len(first); j++ {
				require.False(t, first[i].Plants().Intersects(first[j].Plants()),
					"n=%d: beds %d and %d overlap: %s / %s", n, i, j, first[i].Plants(), first[j].Plants())
			}
		}
	}
}

func TestPartition_FirstFitOrder(t *testing.T) {
	mk := func(ext string, plants ...string) candidate.Candidate {
		return candidate.Candidate{
			Base:      combo.Scored{Combination: combo.New(plants...)},
			Extension: combo.Extension{Plant: ext},
			Preferred: len(plants),
		}
	}
	ranked := []candidate.Candidate{
		mk("", "A", "B"),
		mk("C", "B"), // conflicts on B
		mk("C", "D"),
		mk("", "C"), // conflicts on C
		mk("", "E"),
	}

	beds := bed.Partition(ranked)
	require.Len(t, beds, 3)
	require.Equal(t, combo.Combination{"A", "B"}, beds[0].Plants())
	require.Equal(t, combo.Combination{"C", "D"}, beds[1].Plants())
	require.Equal(t, []string{"C"}, beds[1].Recommended())
	require.Equal(t, combo.Combination{"E"}, beds[2].Plants())
}
