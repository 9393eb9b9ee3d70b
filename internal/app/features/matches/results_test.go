package matches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDeriveHomeMatch(t *testing.T) {
	m := Match{IsHome: true, HomeScore: intPtr(3), AwayScore: intPtr(1)}
	res := Derive(m)

	assert.Equal(t, 3, res.OurScore)
	assert.Equal(t, 1, res.TheirScore)
	assert.Equal(t, OutcomeWin, res.Outcome)
}

func TestDeriveAwayMatchSwapsScores(t *testing.T) {
	// Same raw 3-1 scoreline, but played away: home goals belong to the
	// opponent, so this is a 1-3 loss from the club's perspective.
	m := Match{IsHome: false, HomeScore: intPtr(3), AwayScore: intPtr(1)}
	res := Derive(m)

	assert.Equal(t, 1, res.OurScore)
	assert.Equal(t, 3, res.TheirScore)
	assert.Equal(t, OutcomeLoss, res.Outcome)
}

func TestDeriveDraw(t *testing.T) {
	m := Match{IsHome: false, HomeScore: intPtr(2), AwayScore: intPtr(2)}
	res := Derive(m)

	assert.Equal(t, OutcomeDraw, res.Outcome)
}

func TestDeriveMissingScoresCountAsZero(t *testing.T) {
	m := Match{IsHome: true, HomeScore: intPtr(1)}
	res := Derive(m)

	assert.Equal(t, 1, res.OurScore)
	assert.Equal(t, 0, res.TheirScore)
	assert.Equal(t, OutcomeWin, res.Outcome)
}

func TestComputeStats(t *testing.T) {
	completed := []Match{
		{Status: StatusCompleted, IsHome: true, HomeScore: intPtr(3), AwayScore: intPtr(1)},  // win 3-1
		{Status: StatusCompleted, IsHome: false, HomeScore: intPtr(2), AwayScore: intPtr(0)}, // loss 0-2
		{Status: StatusCompleted, IsHome: true, HomeScore: intPtr(1), AwayScore: intPtr(1)},  // draw 1-1
		{Status: StatusUpcoming, IsHome: true},                                               // ignored
	}

	stats := ComputeStats(completed)

	assert.Equal(t, 3, stats.Played)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 4, stats.GoalsFor)
	assert.Equal(t, 4, stats.GoalsAgainst)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, SeasonStats{}, stats)
}
