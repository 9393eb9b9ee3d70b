package matches

// Outcome values for a completed match from the club's perspective.
const (
	OutcomeWin  = "win"
	OutcomeDraw = "draw"
	OutcomeLoss = "loss"
)

// Result is a completed match seen from the club's side: which score was
// ours depends on whether the match was played at home.
type Result struct {
	OurScore   int    `json:"ourScore"`
	TheirScore int    `json:"theirScore"`
	Outcome    string `json:"outcome"`
}

// SeasonStats are running totals over all completed matches.
type SeasonStats struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

func scoreOrZero(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}

// Derive computes the match result from the club's perspective. A missing
// score counts as zero, mirroring how the site always rendered them.
func Derive(m Match) Result {
	our := scoreOrZero(m.HomeScore)
	their := scoreOrZero(m.AwayScore)
	if !m.IsHome {
		our, their = their, our
	}

	outcome := OutcomeDraw
	switch {
	case our > their:
		outcome = OutcomeWin
	case our < their:
		outcome = OutcomeLoss
	}

	return Result{OurScore: our, TheirScore: their, Outcome: outcome}
}

// ComputeStats accumulates season totals over completed matches. Matches in
// any other status are skipped, so callers may pass the full fixture list.
func ComputeStats(list []Match) SeasonStats {
	var stats SeasonStats
	for _, m := range list {
		if m.Status != StatusCompleted {
			continue
		}
		res := Derive(m)
		stats.Played++
		stats.GoalsFor += res.OurScore
		stats.GoalsAgainst += res.TheirScore
		switch res.Outcome {
		case OutcomeWin:
			stats.Wins++
		case OutcomeDraw:
			stats.Draws++
		case OutcomeLoss:
			stats.Losses++
		}
	}
	return stats
}
