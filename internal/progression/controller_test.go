package progression

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xtding233/neuroboost/internal/clock"
	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/minigame"
	"github.com/xtding233/neuroboost/internal/notify"
	"github.com/xtding233/neuroboost/internal/ranking"
	"github.com/xtding233/neuroboost/internal/rng"
	"github.com/xtding233/neuroboost/internal/store"
)

var epoch = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type harness struct {
	c     *Controller
	clock *clock.Scheduler
	queue *notify.Queue
	kv    store.KV
}

func newHarness(t *testing.T, kv store.KV, r rng.RandomSource, mod func(*config.Tuning)) *harness {
	t.Helper()
	if kv == nil {
		kv = store.NewMemory()
	}
	if r == nil {
		r = rng.NewSeeded(1)
	}
	tun := config.Defaults()
	tun.SurpriseChance = 0
	if mod != nil {
		mod(&tun)
	}
	h := &harness{clock: clock.New(epoch), queue: notify.NewQueue(), kv: kv}
	c, err := New(context.Background(), Options{
		Store:      kv,
		Tuning:     tun,
		RNG:        r,
		Clock:      h.clock,
		Sink:       h.queue,
		PlayerName: "tester",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.c = c
	return h
}

func (h *harness) start(t *testing.T, id minigame.GameID) {
	t.Helper()
	if err := h.c.StartSession(id); err != nil {
		t.Fatalf("StartSession(%s): %v", id, err)
	}
}

func (h *harness) end(t *testing.T) Result {
	t.Helper()
	res, err := h.c.EndSession(context.Background())
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	return res
}

func countKind(ns []notify.Notification, k notify.Kind) int {
	n := 0
	for _, x := range ns {
		if x.Kind == k {
			n++
		}
	}
	return n
}

func seed(t *testing.T, kv store.KV, key, value string) {
	t.Helper()
	if err := store.Put(context.Background(), kv, key, []byte(value)); err != nil {
		t.Fatal(err)
	}
}

func TestFreshProfileDefaults(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	p := h.c.Profile()
	if p.Level != 1 || p.NeuralCrystals != 100 || p.Gold != 0 || p.TotalScore != 0 {
		t.Fatalf("profile = %+v", p)
	}
	if len(p.BestScores) != 3 {
		t.Fatalf("best scores = %v", p.BestScores)
	}
	if len(h.c.Missions()) != 3 || h.c.MissionPercent() != 0 {
		t.Fatalf("missions = %v", h.c.Missions())
	}
}

func TestAddPointsComboAndCrystals(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)

	h.c.AddPoints(50) // 50 x 1.0, +5 crystals
	h.c.AddPoints(50) // 50 x 1.1 = 55, +5 crystals
	v, _ := h.c.Session()
	if v.Score != 105 || v.Combo != 1.2 {
		t.Fatalf("session = %+v", v)
	}
	if got := h.c.Profile().NeuralCrystals; got != 110 {
		t.Fatalf("crystals = %d, want 110", got)
	}

	h.c.ResetCombo()
	if v, _ := h.c.Session(); v.Combo != 1.0 {
		t.Fatalf("combo after reset = %v", v.Combo)
	}
}

func TestCrystalGainMatchesIntegerArithmetic(t *testing.T) {
	combo := 1.0
	for k := 0; k <= 40; k++ {
		for raw := 0; raw <= 1000; raw++ {
			want := raw * (10 + k) / 100
			if got := CrystalGain(raw, combo, 0.1); got != want {
				t.Fatalf("raw=%d combo=%v: got %d, want %d", raw, combo, got, want)
			}
		}
		combo = NextCombo(combo, 0.1, 5.0)
	}
	if combo != 5.0 {
		t.Fatalf("combo after sweep = %v", combo)
	}
}

func TestAddPointsWholeProductKeepsCrystal(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	for i := 0; i < 31; i++ {
		h.c.AddPoints(0)
	}
	if v, _ := h.c.Session(); v.Combo != 4.1 {
		t.Fatalf("combo = %v, want 4.1", v.Combo)
	}
	h.c.AddPoints(700) // 700 x 4.1 = 2870, +287 crystals
	if got := h.c.Profile().NeuralCrystals; got != 100+287 {
		t.Fatalf("crystals = %d, want 387", got)
	}
}

func TestComboCapsAtFive(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	for i := 0; i < 39; i++ {
		h.c.AddPoints(0)
	}
	if v, _ := h.c.Session(); v.Combo != 4.9 {
		t.Fatalf("combo after 39 = %v", v.Combo)
	}
	h.c.AddPoints(0)
	if v, _ := h.c.Session(); v.Combo != 5.0 {
		t.Fatalf("combo after 40 = %v", v.Combo)
	}
	for i := 0; i < 5; i++ {
		h.c.AddPoints(0)
	}
	if v, _ := h.c.Session(); v.Combo != 5.0 || v.ComboDisplay() != 5.0 {
		t.Fatalf("combo past cap = %v", v.Combo)
	}
}

func TestSpecialEffectAboveThreshold(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(100)
	if n := countKind(h.queue.Drain(), notify.KindSpecialEffect); n != 0 {
		t.Fatalf("bonus of exactly 100 should not trigger, got %d", n)
	}
	h.c.AddPoints(100) // 110
	if n := countKind(h.queue.Drain(), notify.KindSpecialEffect); n != 1 {
		t.Fatalf("special effects = %d", n)
	}
}

func TestEndSessionExample(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(1500)
	res := h.end(t)
	if res.FinalScore != 100 || res.GoldReward != 1000 || res.CrystalReward != 200 {
		t.Fatalf("result = %+v", res)
	}
	if res.Title != "Perfect!" || !res.NewRecord {
		t.Fatalf("result = %+v", res)
	}
	p := h.c.Profile()
	if p.TotalScore != 100 || p.BestScores["color-match"] != 100 {
		t.Fatalf("profile = %+v", p)
	}
	// 1000 session gold + 500 from the score mission
	if p.Gold != 1500 {
		t.Fatalf("gold = %d", p.Gold)
	}
	// 100 start + 150 in-session + 200 reward + 100 mission
	if p.NeuralCrystals != 550 {
		t.Fatalf("crystals = %d", p.NeuralCrystals)
	}
	rows := h.c.Rankings(ranking.Daily, 10)
	if len(rows) != 1 || rows[0].Score != 100 || rows[0].Name != "tester" {
		t.Fatalf("rankings = %+v", rows)
	}
}

func TestEndSessionTwiceDoesNotDoubleCredit(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(500)
	h.end(t)
	before := h.c.Profile()

	if _, err := h.c.EndSession(context.Background()); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("second EndSession err = %v", err)
	}
	after := h.c.Profile()
	if after.Gold != before.Gold || after.TotalScore != before.TotalScore || after.NeuralCrystals != before.NeuralCrystals {
		t.Fatalf("second call changed profile: %+v -> %+v", before, after)
	}
	if len(h.c.Rankings(ranking.Weekly, 10)) != 1 {
		t.Fatal("second call inserted a ranking")
	}
}

func TestNotificationsFollowPersistence(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv, nil, nil)
	checked := 0
	h.c.sink = notify.Func(func(n notify.Notification) {
		if n.Kind != notify.KindNewRecord {
			return
		}
		raw, err := kv.Get(context.Background(), "totalScore")
		if err != nil || string(raw) != "80" {
			t.Errorf("new-record shown before save: totalScore=%q err=%v", raw, err)
		}
		checked++
	})
	h.start(t, minigame.SequenceMemory)
	h.c.AddPoints(800)
	h.end(t)
	if checked != 1 {
		t.Fatalf("new-record notifications = %d", checked)
	}
}

func TestScoreMissionCreditsOnce(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	for i := 0; i < 3; i++ {
		h.start(t, minigame.ColorMatch)
		h.c.AddPoints(1000)
		h.end(t)
	}
	ns := h.queue.Drain()
	scoreMission := 0
	for _, n := range ns {
		if n.Kind == notify.KindMissionComplete && n.Payload["id"] == "first_100_score" {
			scoreMission++
		}
	}
	if scoreMission != 1 {
		t.Fatalf("score mission completions = %d", scoreMission)
	}
	if got := h.c.Profile().Gold; got != 3*1000+500 {
		t.Fatalf("gold = %d", got)
	}
}

func TestLegendaryMissionAfterGacha(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, "neuralCrystals", "900")
	h := newHarness(t, kv, rng.NewScripted(0), nil)
	res, err := h.c.RollGacha(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Legendary {
		t.Fatalf("expected legendary: %+v", res)
	}
	h.start(t, minigame.ColorMatch)
	h.end(t)
	for _, m := range h.c.Missions() {
		if m.ID == "collect_legendary" && !m.Completed {
			t.Fatalf("legendary mission = %+v", m)
		}
	}
}

func TestGachaInsufficientCurrency(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, "neuralCrystals", "50")
	h := newHarness(t, kv, nil, nil)
	if h.c.CanRoll(1) {
		t.Fatal("CanRoll(1) with 50 crystals")
	}
	_, err := h.c.RollGacha(context.Background(), 1)
	if !errors.Is(err, ErrInsufficientCurrency) {
		t.Fatalf("err = %v", err)
	}
	if got := h.c.Profile().NeuralCrystals; got != 50 {
		t.Fatalf("crystals = %d", got)
	}
	if n := countKind(h.queue.Drain(), notify.KindInsufficientCurrency); n != 1 {
		t.Fatalf("insufficient notifications = %d", n)
	}
}

func TestGachaSingleRollRefund(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv, rng.NewScripted(0.5, 0.0), nil)
	res, err := h.c.RollGacha(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "brain_food" {
		t.Fatalf("items = %+v", res.Items)
	}
	p := h.c.Profile()
	if p.NeuralCrystals != 20 || p.Collection["brain_food"] != 1 {
		t.Fatalf("profile = %+v", p)
	}
	raw, _ := kv.Get(context.Background(), "neuralCrystals")
	if string(raw) != "20" {
		t.Fatalf("stored crystals = %q", raw)
	}
	if n := countKind(h.queue.Drain(), notify.KindGachaResult); n != 1 {
		t.Fatalf("gacha-result notifications = %d", n)
	}
	if h.c.Collection().BrainPower != 20 {
		t.Fatalf("brain power = %d", h.c.Collection().BrainPower)
	}
}

func TestCountdownEndsSession(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.clock.Advance(20 * time.Second)
	v, ok := h.c.Session()
	if !ok || v.TimeRemaining != 10 || !v.TimeLow {
		t.Fatalf("session = %+v ok=%v", v, ok)
	}
	h.clock.Advance(10 * time.Second)
	if _, ok := h.c.Session(); ok {
		t.Fatal("session still active after 30s")
	}
	res, ok := h.c.LastResult()
	if !ok || res.FinalScore != 0 || res.Title != "Game over!" {
		t.Fatalf("last result = %+v ok=%v", res, ok)
	}
	if h.clock.Pending() != 0 {
		t.Fatalf("timers left: %d", h.clock.Pending())
	}
	h.clock.Advance(5 * time.Second)
	if got := len(h.c.Rankings(ranking.Monthly, 10)); got != 1 {
		t.Fatalf("rankings = %d, countdown fired twice?", got)
	}
}

func TestStartSessionAbandonsPrevious(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(500)
	h.start(t, minigame.SequenceMemory)

	p := h.c.Profile()
	if p.TotalScore != 0 || p.Gold != 0 {
		t.Fatalf("abandoned session was rewarded: %+v", p)
	}
	if p.NeuralCrystals != 150 {
		t.Fatalf("in-session crystals should stay, got %d", p.NeuralCrystals)
	}
	v, _ := h.c.Session()
	if v.Game != minigame.SequenceMemory || v.Score != 0 || v.Combo != 1.0 || v.TimeRemaining != 30 {
		t.Fatalf("new session = %+v", v)
	}
	h.clock.Advance(30 * time.Second)
	if got := len(h.c.Rankings(ranking.Daily, 10)); got != 1 {
		t.Fatalf("rankings = %d, want only the second session", got)
	}
}

func TestAbandonPersistsEarnedCrystals(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(500) // +50 crystals
	if err := h.c.Abandon(context.Background()); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, ok := h.c.Session(); ok {
		t.Fatal("session still active after Abandon")
	}
	raw, err := kv.Get(context.Background(), "neuralCrystals")
	if err != nil || string(raw) != "150" {
		t.Fatalf("stored crystals = %q, err %v", raw, err)
	}
	if p := h.c.Profile(); p.TotalScore != 0 || p.Gold != 0 {
		t.Fatalf("abandoned session was rewarded: %+v", p)
	}

	again := newHarness(t, kv, nil, nil)
	if got := again.c.Profile().NeuralCrystals; got != 150 {
		t.Fatalf("crystals after reload = %d, want 150", got)
	}
	if err := again.c.Abandon(context.Background()); err != nil {
		t.Fatalf("idle Abandon: %v", err)
	}
}

func TestUnknownGame(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	if err := h.c.StartSession("tetris"); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("err = %v", err)
	}
	if _, err := h.c.Action(minigame.Input{}); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("action err = %v", err)
	}
}

func TestLevelUp(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, "totalScore", "950")
	h := newHarness(t, kv, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(1000)
	res := h.end(t)
	if !res.LevelUp || h.c.Profile().Level != 2 {
		t.Fatalf("result = %+v level = %d", res, h.c.Profile().Level)
	}
	if n := countKind(h.queue.Drain(), notify.KindLevelUp); n != 1 {
		t.Fatalf("level-up notifications = %d", n)
	}
}

func TestAchievementsFireOnce(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.start(t, minigame.ColorMatch)
	for i := 0; i < 20; i++ {
		h.c.AddPoints(10)
	}
	h.end(t)
	p := h.c.Profile()
	if !p.Achievements["first_game"] || !p.Achievements["combo_master"] {
		t.Fatalf("achievements = %v", p.AchievementIDs())
	}
	if p.Achievements["score_1000"] || p.Achievements["speed_demon"] {
		t.Fatalf("capped-score achievements unlocked: %v", p.AchievementIDs())
	}
	h.queue.Drain()

	h.start(t, minigame.ColorMatch)
	for i := 0; i < 20; i++ {
		h.c.AddPoints(10)
	}
	h.end(t)
	if n := countKind(h.queue.Drain(), notify.KindAchievement); n != 0 {
		t.Fatalf("achievements fired again: %d", n)
	}
}

func TestReactionActionPersistsStats(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv, rng.NewScripted(0), nil)
	h.start(t, minigame.ReactionTime)
	h.clock.Advance(2000 * time.Millisecond)
	h.clock.Advance(150 * time.Millisecond)
	out, err := h.c.Action(minigame.Input{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 350 || out.ReactionMs != 150 {
		t.Fatalf("outcome = %+v", out)
	}
	raw, err := kv.Get(context.Background(), "bestReactionTime")
	if err != nil || string(raw) != "150" {
		t.Fatalf("bestReactionTime = %q, %v", raw, err)
	}
	if v, _ := h.c.Session(); v.Score != 350 {
		t.Fatalf("session score = %d", v.Score)
	}
}

func TestDailyChallengePaysOncePerDay(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	for i := 0; i < 4; i++ {
		h.start(t, minigame.ColorMatch)
		h.end(t)
	}
	if got := h.c.Profile().TotalScore; got != 500 {
		t.Fatalf("total = %d, want one challenge bonus", got)
	}
	if done, target := h.c.ChallengeProgress(); done != 3 || target != 3 {
		t.Fatalf("progress = %d/%d", done, target)
	}

	h.clock.Advance(24 * time.Hour)
	if done, _ := h.c.ChallengeProgress(); done != 0 {
		t.Fatalf("progress next day = %d", done)
	}
	for i := 0; i < 3; i++ {
		h.start(t, minigame.ColorMatch)
		h.end(t)
	}
	if got := h.c.Profile().TotalScore; got != 1000 {
		t.Fatalf("total = %d after second day", got)
	}
}

func TestDailyLoginReward(t *testing.T) {
	h := newHarness(t, nil, nil, nil)
	h.c.ScheduleDailyLogin()
	h.clock.Advance(DailyLoginDelay - time.Millisecond)
	if h.c.Profile().TotalScore != 0 {
		t.Fatal("login reward paid early")
	}
	h.clock.Advance(time.Millisecond)
	if h.c.Profile().TotalScore != 100 {
		t.Fatalf("total = %d", h.c.Profile().TotalScore)
	}
	if ok, _ := h.c.ClaimDailyLogin(context.Background()); ok {
		t.Fatal("second claim on the same day paid out")
	}
	h.clock.Advance(24 * time.Hour)
	if ok, err := h.c.ClaimDailyLogin(context.Background()); !ok || err != nil {
		t.Fatalf("next-day claim = %v, %v", ok, err)
	}
	if h.c.Profile().TotalScore != 200 {
		t.Fatalf("total = %d", h.c.Profile().TotalScore)
	}
}

func TestSurpriseRewardIsDeferred(t *testing.T) {
	h := newHarness(t, nil, rng.NewSeeded(5), func(t *config.Tuning) { t.SurpriseChance = 1 })
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(400)
	res := h.end(t)
	if res.Surprise == nil {
		t.Fatal("surprise not granted at chance 1")
	}
	if got := h.c.Profile().TotalScore; got != res.FinalScore+res.Surprise.Value {
		t.Fatalf("total = %d", got)
	}
	labelSeen := func(ns []notify.Notification) bool {
		for _, n := range ns {
			if n.Title == res.Surprise.Label {
				return true
			}
		}
		return false
	}
	if labelSeen(h.queue.Drain()) {
		t.Fatal("surprise shown immediately")
	}
	h.clock.Advance(SurpriseDelay)
	if !labelSeen(h.queue.Drain()) {
		t.Fatal("surprise not shown after delay")
	}
}

func TestCorruptStoreDegradesToDefaults(t *testing.T) {
	kv := store.NewMemory()
	seed(t, kv, "gold", "{bad")
	seed(t, kv, "collection", "[1,2]")
	seed(t, kv, "level", "3")
	h := newHarness(t, kv, nil, nil)
	p := h.c.Profile()
	if p.Gold != 0 || len(p.Collection) != 0 || p.NeuralCrystals != 100 {
		t.Fatalf("profile = %+v", p)
	}
	if p.Level != 3 {
		t.Fatalf("readable keys should load, level = %d", p.Level)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.db")
	db, err := store.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	h := newHarness(t, db, nil, nil)
	h.start(t, minigame.ReactionTime)
	h.c.AddPoints(700)
	h.end(t)
	want := h.c.Profile()
	db.Close()

	db2, err := store.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer db2.Close()
	h2 := newHarness(t, db2, nil, nil)
	got := h2.c.Profile()
	if got.TotalScore != want.TotalScore || got.Gold != want.Gold || got.NeuralCrystals != want.NeuralCrystals {
		t.Fatalf("reloaded %+v, want %+v", got, want)
	}
	if got.BestScores["reaction-time"] != 70 || !got.Achievements["first_game"] {
		t.Fatalf("reloaded %+v", got)
	}
	if got.LastPlayTime != epoch.UnixMilli() {
		t.Fatalf("lastPlayTime = %d", got.LastPlayTime)
	}
	if rows := h2.c.Rankings(ranking.Daily, 10); len(rows) != 1 || rows[0].Score != 70 {
		t.Fatalf("rankings = %+v", rows)
	}
}

func TestReset(t *testing.T) {
	kv := store.NewMemory()
	h := newHarness(t, kv, nil, nil)
	h.start(t, minigame.ColorMatch)
	h.c.AddPoints(1000)
	h.end(t)
	if err := h.c.Reset(context.Background()); err != nil {
		t.Fatal(err)
	}
	p := h.c.Profile()
	if p.TotalScore != 0 || p.NeuralCrystals != 100 || len(p.Achievements) != 0 {
		t.Fatalf("profile after reset = %+v", p)
	}
	if len(h.c.Rankings(ranking.Daily, 10)) != 0 || h.c.MissionPercent() != 0 {
		t.Fatal("rankings or missions survived reset")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0, 0}, {-5, 0}, {250, 25}, {994, 99}, {1000, 100}, {1500, 100}, {5000, 100},
	}
	for _, c := range cases {
		if got := Normalize(c.score, 1000); got != c.want {
			t.Errorf("Normalize(%v) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestTitle(t *testing.T) {
	for score, want := range map[int]string{95: "Perfect!", 80: "Great!", 75: "Good!", 60: "Not bad!", 10: "Game over!"} {
		if got := Title(score); got != want {
			t.Errorf("Title(%d) = %q", score, got)
		}
	}
}

type fakeResolver map[string]config.Tuning

func (f fakeResolver) Resolve(game string) (config.Tuning, error) {
	if t, ok := f[game]; ok {
		return t, nil
	}
	return config.Tuning{}, errors.New("no such file")
}

func TestPerGameTuning(t *testing.T) {
	short := config.Defaults()
	short.SessionDuration = 10 * time.Second
	short.SurpriseChance = 0
	h := newHarness(t, nil, nil, nil)
	h.c.resolver = fakeResolver{"reaction-time": short}

	h.start(t, minigame.ReactionTime)
	if v, _ := h.c.Session(); v.TimeRemaining != 10 {
		t.Fatalf("reaction session time = %d", v.TimeRemaining)
	}
	// resolver failure falls back to the shared tuning
	h.start(t, minigame.ColorMatch)
	if v, _ := h.c.Session(); v.TimeRemaining != 30 {
		t.Fatalf("color session time = %d", v.TimeRemaining)
	}
}
