package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/companion/planner"
)

const gardenCSV = `helper,helped,effect
Basil,Tomato,repels pests
Marigold,Tomato,deters nematodes
Basil,Pepper,
Bean,Corn,fixes nitrogen
`

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func dataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "garden.csv")
	require.NoError(t, os.WriteFile(path, []byte(gardenCSV), 0o600))

	return path
}

func TestPlan_Text(t *testing.T) {
	out, _, err := run(t, "plan", "--data", dataset(t), "Tomato", "Basil", "Okra")
	require.NoError(t, err)

	assert.Contains(t, out, "Garden plan")
	assert.Contains(t, out, "Bed 1")
	assert.Contains(t, out, "score 2")
	assert.Contains(t, out, "Marigold")
	assert.Contains(t, out, "recommended")
	assert.Contains(t, out, "Basil → Tomato (repels pests)")
	assert.Contains(t, out, "Unknown plants: Okra")
}

func TestPlan_JSON(t *testing.T) {
	out, _, err := run(t, "plan", "--data", dataset(t), "--prefer", "Tomato,Basil", "--no-extensions", "-o", "json")
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Beds, 1)
	assert.Equal(t, 1, res.Beds[0].Score)
	assert.Equal(t, []planner.PlantView{
		{Name: "Basil", Role: "preferred"},
		{Name: "Tomato", Role: "preferred"},
	}, res.Beds[0].Plants)
	assert.Empty(t, res.Unknown)
}

func TestPlan_YAML(t *testing.T) {
	out, _, err := run(t, "plan", "--data", dataset(t), "-o", "yaml", "Corn", "Bean")
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res.Beds, 1)
	assert.Equal(t, []planner.EffectView{{Helper: "Bean", Helped: "Corn", Effect: "fixes nitrogen"}}, res.Beds[0].Effects)
}

func TestPlan_BundledDataset(t *testing.T) {
	out, _, err := run(t, "plan", "-o", "json", "Corn", "Bean", "Squash")
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.Beds)
}

func TestPlan_Errors(t *testing.T) {
	_, _, err := run(t, "plan", "--data", dataset(t), "--max-size", "9", "Tomato")
	assert.ErrorContains(t, err, "MaxGroupSize")

	_, _, err = run(t, "plan", "--data", filepath.Join(t.TempDir(), "none.csv"), "Tomato")
	assert.ErrorContains(t, err, "source unreadable")

	_, _, err = run(t, "plan", "-o", "html", "Tomato")
	assert.ErrorContains(t, err, "output=html")
}

func TestCompanions(t *testing.T) {
	out, _, err := run(t, "companions", "--data", dataset(t), "--prefer", "Tomato,Pepper,Basil")
	require.NoError(t, err)
	assert.Contains(t, out, "Basil helps Pepper, Tomato")
	assert.Contains(t, out, "Marigold helps Tomato")

	out, _, err = run(t, "companions", "--data", dataset(t), "-o", "json", "Tomato", "Pepper")
	require.NoError(t, err)
	var rep companionsReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Recommendations, 2)
	assert.Equal(t, "Basil", rep.Recommendations[0].Plant)
	assert.Equal(t, 2, rep.Recommendations[0].Count)
}

func TestHelpers(t *testing.T) {
	out, _, err := run(t, "helpers", "--data", dataset(t), "-o", "json", "Tomato")
	require.NoError(t, err)

	var rep helpersReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []relation{
		{Plant: "Basil", Effect: "repels pests"},
		{Plant: "Marigold", Effect: "deters nematodes"},
	}, rep.HelpedBy)
	assert.Empty(t, rep.Helps)

	_, _, err = run(t, "helpers", "--data", dataset(t), "Okra")
	assert.ErrorContains(t, err, `unknown plant "Okra"`)
}

func TestPlants(t *testing.T) {
	out, _, err := run(t, "plants", "--data", dataset(t))
	require.NoError(t, err)
	assert.Equal(t, "Basil\nBean\nCorn\nMarigold\nPepper\nTomato\n", out)
}

func TestConfigFileAndLogging(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "companion.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"data:\n  path: "+dataset(t)+"\nplan:\n  preferred: [Tomato, Basil]\nlog:\n  level: debug\n  format: json\noutput: json\n",
	), 0o600))

	out, logs, err := run(t, "--config", cfgPath, "plan")
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Beds, 1)
	assert.Contains(t, logs, `"run_id"`)
	assert.Contains(t, logs, "relationship dataset loaded")
}
