package planner_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
	"github.com/katalvlaran/companion/planner"
)

// PlannerSuite runs the pipeline against a small fixed garden.
type PlannerSuite struct {
	suite.Suite
	g *benefit.Graph
}

func (s *PlannerSuite) SetupTest() {
	b, err := benefit.NewBuilder()
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.Add("Basil", "Tomato", "repels pests"))
	require.NoError(s.T(), b.Add("Marigold", "Tomato", "deters nematodes"))
	require.NoError(s.T(), b.Add("Basil", "Pepper", ""))
	require.NoError(s.T(), b.AddPlant("Mint"))
	s.g = b.Build()
}

func basilTomato(t *testing.T) *benefit.Graph {
	t.Helper()
	b, err := benefit.NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Add("Basil", "Tomato", "repels pests"))

	return b.Build()
}

// TestSinglePair verifies the minimal two-plant garden.
func (s *PlannerSuite) TestSinglePair() {
	res, err := planner.Plan(context.Background(), basilTomato(s.T()),
		planner.Request{Preferred: []string{"Basil", "Tomato"}, MaxGroupSize: 4})
	require.NoError(s.T(), err)

	s.Equal([]planner.BedView{{
		Plants: []planner.PlantView{
			{Name: "Basil", Role: "preferred"},
			{Name: "Tomato", Role: "preferred"},
		},
		Score:   1,
		Effects: []planner.EffectView{{Helper: "Basil", Helped: "Tomato", Effect: "repels pests"}},
	}}, res.Beds)
	s.Empty(res.Unknown)
}

// TestEmptySelection yields no beds and serializes as empty arrays.
func (s *PlannerSuite) TestEmptySelection() {
	res, err := planner.Plan(context.Background(), s.g, planner.Request{})
	require.NoError(s.T(), err)
	s.Empty(res.Beds)

	raw, err := json.Marshal(res)
	require.NoError(s.T(), err)
	s.JSONEq(`{"beds":[],"unknown":[]}`, string(raw))
}

// TestUnknownReported drops unknown names from beds and reports them.
func (s *PlannerSuite) TestUnknownReported() {
	res, err := planner.Plan(context.Background(), basilTomato(s.T()),
		planner.Request{Preferred: []string{"Unicorn", "Basil", "Tomato", "Unicorn"}})
	require.NoError(s.T(), err)

	s.Equal([]string{"Unicorn"}, res.Unknown)
	require.Len(s.T(), res.Beds, 1)
	s.Len(res.Beds[0].Plants, 2)
}

// TestIsolatedPlant places a plant without relationships alone.
func (s *PlannerSuite) TestIsolatedPlant() {
	res, err := planner.Plan(context.Background(), s.g, planner.Request{Preferred: []string{"Mint"}})
	require.NoError(s.T(), err)

	s.Equal([]planner.BedView{{
		Plants:  []planner.PlantView{{Name: "Mint", Role: "preferred"}},
		Score:   0,
		Effects: []planner.EffectView{},
	}}, res.Beds)
}

// TestRecommendation adds the best helper of the selection.
func (s *PlannerSuite) TestRecommendation() {
	res, err := planner.Plan(context.Background(), s.g, planner.Request{Preferred: []string{"Tomato", "Basil"}})
	require.NoError(s.T(), err)

	require.Len(s.T(), res.Beds, 1)
	s.Equal([]planner.PlantView{
		{Name: "Basil", Role: "preferred"},
		{Name: "Marigold", Role: "recommended"},
		{Name: "Tomato", Role: "preferred"},
	}, res.Beds[0].Plants)
	s.Equal(2, res.Beds[0].Score)
	s.Equal([]planner.EffectView{
		{Helper: "Basil", Helped: "Tomato", Effect: "repels pests"},
		{Helper: "Marigold", Helped: "Tomato", Effect: "deters nematodes"},
	}, res.Beds[0].Effects)
}

// TestDisableExtensions keeps beds to the user's own plants.
func (s *PlannerSuite) TestDisableExtensions() {
	res, err := planner.Plan(context.Background(), s.g,
		planner.Request{Preferred: []string{"Tomato", "Basil"}, DisableExtensions: true})
	require.NoError(s.T(), err)

	require.Len(s.T(), res.Beds, 1)
	s.Equal(1, res.Beds[0].Score)
	for _, p := range res.Beds[0].Plants {
		s.Equal("preferred", p.Role)
	}
}

// TestErrors covers nil graph, bad group size and cancellation.
func (s *PlannerSuite) TestErrors() {
	ctx := context.Background()

	_, err := planner.Plan(ctx, nil, planner.Request{})
	s.ErrorIs(err, planner.ErrGraphNil)

	_, err = planner.Plan(ctx, s.g, planner.Request{Preferred: []string{"Basil"}, MaxGroupSize: 7})
	s.ErrorIs(err, candidate.ErrOptionViolation)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = planner.Plan(canceled, s.g, planner.Request{Preferred: []string{"Basil"}})
	s.ErrorIs(err, context.Canceled)
}

// TestRequestNotMutated checks the caller's selection slice is untouched.
func (s *PlannerSuite) TestRequestNotMutated() {
	prefer := []string{"Tomato", "Basil", "Ghost"}
	_, err := planner.Plan(context.Background(), s.g, planner.Request{Preferred: prefer})
	require.NoError(s.T(), err)
	s.Equal([]string{"Tomato", "Basil", "Ghost"}, prefer)
}

// TestConcurrentPlans shares one graph between simultaneous requests.
func (s *PlannerSuite) TestConcurrentPlans() {
	want, err := planner.Plan(context.Background(), s.g, planner.Request{Preferred: []string{"Basil", "Tomato", "Mint"}})
	require.NoError(s.T(), err)

	const workers = 8
	results := make(chan *planner.Result, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := planner.Plan(context.Background(), s.g, planner.Request{Preferred: []string{"Mint", "Tomato", "Basil"}})
			if err != nil {
				errs <- err
				return
			}
			results <- r
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	for r := range results {
		s.Equal(want, r)
	}
}

// TestCompanions reports which selected plants help each other.
func (s *PlannerSuite) TestCompanions() {
	got := planner.Companions(s.g, []string{"Tomato", "Basil", "Pepper", "Ghost"})
	s.Equal([]planner.Companion{{Plant: "Basil", Helps: []string{"Pepper", "Tomato"}}}, got)

	s.Empty(planner.Companions(s.g, []string{"Mint"}))
	s.NotNil(planner.Companions(nil, nil))
}

// TestTopHelpers ranks unselected helpers by reach.
func (s *PlannerSuite) TestTopHelpers() {
	got := planner.TopHelpers(s.g, []string{"Tomato", "Pepper"}, 0)
	s.Equal([]planner.HelperSuggestion{
		{Plant: "Basil", Count: 2, Helps: []string{"Pepper", "Tomato"}},
		{Plant: "Marigold", Count: 1, Helps: []string{"Tomato"}},
	}, got)

	top := planner.TopHelpers(s.g, []string{"Tomato", "Pepper"}, 1)
	require.Len(s.T(), top, 1)
	s.Equal("Basil", top[0].Plant)

	s.Empty(planner.TopHelpers(s.g, nil, 5))
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
