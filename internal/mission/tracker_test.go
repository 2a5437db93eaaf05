package mission

import "testing"

func find(ms []Mission, id string) Mission {
	for _, m := range ms {
		if m.ID == id {
			return m
		}
	}
	return Mission{}
}

func TestScoreMissionCompletesOnce(t *testing.T) {
	tr := NewTracker(Defaults())

	done := tr.UpdateProgress("color-match", 99, 0)
	if len(done) != 0 {
		t.Fatalf("completed early: %v", done)
	}
	done = tr.UpdateProgress("color-match", 100, 0)
	if len(done) != 1 || done[0].ID != "first_100_score" {
		t.Fatalf("done = %v", done)
	}
	if m := find(tr.Missions(), "first_100_score"); !m.Completed || m.Current != 100 {
		t.Fatalf("mission = %+v", m)
	}
	for i := 0; i < 3; i++ {
		for _, d := range tr.UpdateProgress("color-match", 100, 0) {
			if d.ID == "first_100_score" {
				t.Fatal("score mission completed twice")
			}
		}
	}
}

func TestGamesPlayedClampsAtTarget(t *testing.T) {
	tr := NewTracker(Defaults())
	completions := 0
	for i := 0; i < 15; i++ {
		for _, d := range tr.UpdateProgress("reaction-time", 10, 0) {
			if d.ID == "total_games_10" {
				completions++
			}
		}
		if m := find(tr.Missions(), "total_games_10"); m.Current > m.Target {
			t.Fatalf("current %d exceeds target", m.Current)
		}
	}
	if completions != 1 {
		t.Fatalf("completions = %d", completions)
	}
}

func TestLegendaryMission(t *testing.T) {
	tr := NewTracker([]Mission{{ID: "legend", Type: TypeLegendaryItems, Target: 2}})
	tr.UpdateProgress("color-match", 0, 1)
	if m := tr.Missions()[0]; m.Current != 1 || m.Completed {
		t.Fatalf("after 1 legendary: %+v", m)
	}
	done := tr.UpdateProgress("color-match", 0, 3)
	if len(done) != 1 || done[0].Current != 2 {
		t.Fatalf("done = %+v", done)
	}
	if tr.CompletionPercent() != 100 {
		t.Fatalf("percent = %d", tr.CompletionPercent())
	}
}

func TestMergeKeepsProgress(t *testing.T) {
	saved := []Mission{
		{ID: "total_games_10", Current: 40},
		{ID: "first_100_score", Current: 100, Completed: true},
		{ID: "retired", Current: 3},
	}
	got := Merge(Defaults(), saved)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	if m := find(got, "total_games_10"); m.Current != 10 || m.Completed {
		t.Fatalf("games mission = %+v", m)
	}
	if m := find(got, "first_100_score"); !m.Completed || m.Reward.Gold != 500 {
		t.Fatalf("score mission = %+v", m)
	}
	tr := NewTracker(got)
	if p := tr.CompletionPercent(); p != 33 {
		t.Fatalf("percent = %d, want 33", p)
	}
}
