package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xtding233/neuroboost/internal/config"
	"github.com/xtding233/neuroboost/internal/gacha"
	"github.com/xtding233/neuroboost/internal/minigame"
	"github.com/xtding233/neuroboost/internal/progression"
	"github.com/xtding233/neuroboost/internal/ranking"
	"github.com/xtding233/neuroboost/internal/rng"
	"github.com/xtding233/neuroboost/internal/tui"
)

func newPlayCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the game hub in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a, err := openApp(ctx, *cfg, true)
			if err != nil {
				return err
			}
			defer a.Close()
			a.ctrl.ScheduleDailyLogin()

			var updates chan config.Tuning
			if cfg.WatchConfig && cfg.ConfigDir != "" {
				updates = make(chan config.Tuning, 1)
				games := make([]string, len(minigame.IDs))
				for i, id := range minigame.IDs {
					games[i] = string(id)
				}
				w := config.NewFileWatcher(a.loader.WatchPaths(games...), 2*time.Second, func(path string) {
					a.loader.Invalidate()
					t, err := a.loader.Resolve("")
					if err != nil {
						a.log.Warn("balance reload rejected", "path", path, "err", err)
						return
					}
					select {
					case updates <- t:
					default:
					}
				}, a.log)
				go w.Run(ctx)
			}
			return tui.Run(ctx, a.ctrl, a.queue, updates, a.log)
		},
	}
}

func newProfileCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show level, currencies and records",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			p := a.ctrl.Profile()
			printHeader(fmt.Sprintf("%s  (level %d)", cfg.PlayerName, p.Level))
			fmt.Printf("Total score     %d\n", p.TotalScore)
			fmt.Printf("Gold            %d\n", p.Gold)
			fmt.Printf("Neural crystals %d\n", p.NeuralCrystals)
			fmt.Println()
			for _, id := range minigame.IDs {
				fmt.Printf("%-16s best %d\n", id, p.BestScores[string(id)])
			}
			if rs := a.ctrl.Reaction(); rs.HasBest {
				avg, _ := rs.Average()
				fmt.Printf("reaction         best %dms, recent avg %.0fms\n", rs.Best, avg)
			}
			done, target := a.ctrl.ChallengeProgress()
			fmt.Printf("\nDaily challenge %d/%d\n", done, target)

			ids := p.AchievementIDs()
			if len(ids) > 0 {
				fmt.Println()
				printHeader("Achievements")
				for _, id := range ids {
					if ach, ok := progression.LookupAchievement(id); ok {
						fmt.Printf("  %s %s\n", ach.Icon, ach.Title)
					}
				}
			}
			if p.LastPlayTime > 0 {
				fmt.Printf("\nLast played %s\n", time.UnixMilli(p.LastPlayTime).Format(time.DateTime))
			}
			return nil
		},
	}
}

func newGachaCmd(cfg *config.AppConfig) *cobra.Command {
	g := &cobra.Command{
		Use:   "gacha",
		Short: "Spend neural crystals on items",
	}
	var count int
	roll := &cobra.Command{
		Use:   "roll",
		Short: "Roll 1 or 10 items",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.ctrl.RollGacha(cmd.Context(), count)
			if errors.Is(err, progression.ErrInsufficientCurrency) {
				a.flush()
				return nil
			}
			if err != nil {
				return err
			}
			for _, it := range res.Items {
				line := fmt.Sprintf("%s %-16s %-9s +%d", it.Icon, it.Name, it.Rarity, it.CrystalValue)
				if it.Rarity == gacha.Legendary {
					printSuccess(line)
				} else {
					printInfo(line)
				}
			}
			fmt.Printf("cost %d, refund %d, balance %d\n", res.Cost, res.Refund, a.ctrl.Profile().NeuralCrystals)
			a.flush()
			return nil
		},
	}
	roll.Flags().IntVarP(&count, "count", "n", 1, "items to roll (1 or 10)")
	g.AddCommand(roll)
	return g
}

func newMissionsCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "missions",
		Short: "List missions and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			printHeader(fmt.Sprintf("Missions (%d%% complete)", a.ctrl.MissionPercent()))
			for _, m := range a.ctrl.Missions() {
				line := fmt.Sprintf("%-28s %3d/%-3d  reward %d gold, %d crystals", m.Title, m.Current, m.Target, m.Reward.Gold, m.Reward.Crystals)
				if m.Completed {
					printSuccess("✓ " + line)
				} else {
					printInfo("  " + line)
				}
			}
			return nil
		},
	}
}

func newRankingsCmd(cfg *config.AppConfig) *cobra.Command {
	var period string
	var limit int
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := ranking.ParsePeriod(period)
			if !ok {
				return fmt.Errorf("unknown period %q (daily, weekly, monthly)", period)
			}
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			rows := a.ctrl.Rankings(p, limit)
			printHeader(strings.ToUpper(string(p)[:1]) + string(p)[1:] + " ranking")
			if len(rows) == 0 {
				printInfo("no games yet")
			}
			for _, r := range rows {
				fmt.Printf("%3d. %-14s %3d  %s\n", r.Rank, r.Name, r.Score, time.UnixMilli(r.Timestamp).Format(time.DateTime))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", string(ranking.Daily), "daily, weekly or monthly")
	cmd.Flags().IntVar(&limit, "limit", 10, "rows to show")
	return cmd
}

func newCollectionCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "collection",
		Short: "Show collected items",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			p := a.ctrl.Profile()
			s := a.ctrl.Collection()
			printHeader(fmt.Sprintf("Collected %d/%d  items %d  brain power %d", s.Distinct, len(gacha.Catalog()), s.Total, s.BrainPower))
			for _, it := range gacha.Catalog() {
				n := p.Collection[it.ID]
				if n == 0 {
					fmt.Printf("   %-16s %-9s -\n", "???", it.Rarity)
					continue
				}
				fmt.Printf("%s %-16s %-9s x%d\n", it.Icon, it.Name, it.Rarity, n)
			}
			fmt.Printf("\nroll x1: %v  roll x10: %v\n", a.ctrl.CanRoll(1), a.ctrl.CanRoll(10))
			return nil
		},
	}
}

func newSimCmd(cfg *config.AppConfig) *cobra.Command {
	sim := &cobra.Command{
		Use:   "sim",
		Short: "Offline balance simulations",
	}
	var count, trials int
	var seed uint64
	g := &cobra.Command{
		Use:   "gacha",
		Short: "Monte Carlo the crystal economy of gacha rolls",
		RunE: func(cmd *cobra.Command, args []string) error {
			tuning, err := config.NewLoader(cfg.ConfigDir).Resolve("")
			if err != nil {
				return err
			}
			var source rng.RandomSource = rng.Default()
			if seed != 0 {
				source = rng.NewSeeded(seed)
			}
			gcfg := gacha.ConfigFromTuning(tuning)
			rep, err := gacha.Simulate(gcfg, count, trials, source)
			if err != nil {
				return err
			}
			printHeader(fmt.Sprintf("%d trials of x%d rolls (tuning %s)", rep.Trials, rep.Count, tuning.Version))
			fmt.Printf("net crystals  mean %.1f  sd %.1f  p50 %.0f  p90 %.0f  p99 %.0f\n",
				rep.Net.Mean, rep.Net.StdDev, rep.Net.P50, rep.Net.P90, rep.Net.P99)
			fmt.Printf("expected refund per item %.2f\n", gacha.ExpectedRefund(gcfg.Rates))
			fmt.Printf("rolls with a legendary %.2f%%  multi-rare %.2f%%\n", rep.LegendaryShare*100, rep.MultiRareShare*100)
			return nil
		},
	}
	g.Flags().IntVarP(&count, "count", "n", 10, "items per roll (1 or 10)")
	g.Flags().IntVar(&trials, "trials", 10000, "number of rolls to simulate")
	g.Flags().Uint64Var(&seed, "seed", cfg.Seed, "rng seed (0 = crypto)")
	sim.AddCommand(g)
	return sim
}

func newResetCmd(cfg *config.AppConfig) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the profile back to a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				printWarn("This deletes all progress. Re-run with --yes to confirm.")
				return errors.New("reset not confirmed")
			}
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.ctrl.Reset(cmd.Context()); err != nil {
				printError("Reset failed.")
				return err
			}
			printSuccess("Profile reset.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
