package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xtding233/neuroboost/internal/gacha"
	"github.com/xtding233/neuroboost/internal/minigame"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case TabCollection:
		b.WriteString(m.collectionView())
	case TabMission:
		b.WriteString(m.missionView())
	case TabRanking:
		b.WriteString(m.rankingView())
	default:
		b.WriteString(m.gamesView())
	}
	b.WriteString("\n")

	if len(m.popups) > 0 {
		n := m.popups[0]
		body := titleStyle.Render(strings.TrimSpace(n.Icon+" "+n.Title)) + "\n" + n.Description
		if more := len(m.popups) - 1; more > 0 {
			body += mutedStyle.Render(fmt.Sprintf("\n(+%d more, enter to dismiss)", more))
		}
		b.WriteString(popupStyle.Render(body))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	p := m.ctrl.Profile()
	return titleStyle.Render("NeuroBoost") + "  " + statStyle.Render(fmt.Sprintf(
		"Lv %d  Score %d  Gold %d  Crystals %d", p.Level, p.TotalScore, p.Gold, p.NeuralCrystals))
}

func (m Model) tabBar() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(string(t)))
		} else {
			parts = append(parts, tabStyle.Render(string(t)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) gamesView() string {
	v, ok := m.ctrl.Session()
	if !ok {
		return m.lobbyView()
	}
	dur := m.ctrl.Tuning().SessionDuration.Seconds()
	timeLine := fmt.Sprintf("%2ds ", v.TimeRemaining)
	if v.TimeLow {
		timeLine = warnStyle.Render(timeLine)
	}
	lines := []string{
		titleStyle.Render(string(v.Game)),
		timeLine + m.bar.ViewAs(float64(v.TimeRemaining)/dur),
		statStyle.Render(fmt.Sprintf("Score %d  Combo x%.1f", v.Score, v.ComboDisplay())),
		"",
		roundView(v.Round),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func roundView(s minigame.Snapshot) string {
	switch s.Game {
	case minigame.ColorMatch:
		opts := make([]string, len(s.Options))
		for i, c := range s.Options {
			opts[i] = fmt.Sprintf("%d %s", i+1, swatch(c))
		}
		return "Target " + swatch(s.Target) + "\n\n" + strings.Join(opts, "  ")
	case minigame.SequenceMemory:
		btns := make([]string, s.Buttons)
		for i := range btns {
			label := fmt.Sprintf("[%d]", i+1)
			if i == s.Highlight {
				label = goodStyle.Render(fmt.Sprintf("<%d>", i+1))
			}
			btns[i] = label
		}
		return fmt.Sprintf("%s  (length %d, %d/%d)\n\n%s", s.Prompt, s.Length, s.Progress, s.Length, strings.Join(btns, " "))
	case minigame.ReactionTime:
		prompt := s.Prompt
		switch s.Phase {
		case "ready":
			prompt = goodStyle.Render(prompt)
		case "penalty":
			prompt = warnStyle.Render(prompt)
		}
		line := prompt
		if s.LastMs > 0 {
			line += mutedStyle.Render(fmt.Sprintf("\nlast %dms  best %dms  avg %.0fms", s.LastMs, s.BestMs, s.AverageMs))
		}
		return line
	}
	return ""
}

func (m Model) lobbyView() string {
	p := m.ctrl.Profile()
	var b strings.Builder
	if res, ok := m.ctrl.LastResult(); ok {
		b.WriteString(titleStyle.Render(res.Title))
		b.WriteString(fmt.Sprintf("  %s scored %d  +%d gold  +%d crystals\n\n", res.Game, res.FinalScore, res.GoldReward, res.CrystalReward))
	}
	for _, id := range minigame.IDs {
		b.WriteString(fmt.Sprintf("%-16s best %3d\n", id, p.BestScores[string(id)]))
	}
	done, target := m.ctrl.ChallengeProgress()
	b.WriteString(fmt.Sprintf("\nDaily challenge %d/%d\n", done, target))
	if rs := m.ctrl.Reaction(); rs.HasBest {
		avg, _ := rs.Average()
		b.WriteString(fmt.Sprintf("Reaction best %dms, recent avg %.0fms\n", rs.Best, avg))
	}
	if last := p.LastPlayTime; last > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("last played %s", formatMillis(last))))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) collectionView() string {
	p := m.ctrl.Profile()
	stats := m.ctrl.Collection()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Collected %d/%d  Items %d  Brain power %d\n\n",
		stats.Distinct, len(gacha.Catalog()), stats.Total, stats.BrainPower))
	for _, it := range gacha.Catalog() {
		n := p.Collection[it.ID]
		name := it.Icon + " " + it.Name
		if n == 0 {
			name = mutedStyle.Render("?? ???")
		} else {
			name = rarityStyles[string(it.Rarity)].Render(name)
		}
		b.WriteString(fmt.Sprintf("%-28s x%-3d %4d\n", name, n, it.CrystalValue))
	}
	cfg := gacha.ConfigFromTuning(m.ctrl.Tuning())
	b.WriteString("\n")
	b.WriteString(rollHint("x1", cfg.Cost.Single, m.ctrl.CanRoll(1)))
	b.WriteString("  ")
	b.WriteString(rollHint("x10", cfg.Cost.Ten, m.ctrl.CanRoll(10)))
	return panelStyle.Render(b.String())
}

func rollHint(label string, cost int, ok bool) string {
	s := fmt.Sprintf("%s: %d crystals", label, cost)
	if !ok {
		return mutedStyle.Render(s)
	}
	return goodStyle.Render(s)
}

func (m Model) missionView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Completed %d%%\n\n", m.ctrl.MissionPercent()))
	for _, ms := range m.ctrl.Missions() {
		mark := "  "
		if ms.Completed {
			mark = goodStyle.Render("✓ ")
		}
		b.WriteString(fmt.Sprintf("%s%-28s %s %d/%d\n", mark, ms.Title,
			m.bar.ViewAs(float64(ms.Percent())/100), ms.Current, ms.Target))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) rankingView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(string(m.period)) + mutedStyle.Render("  (p to switch)") + "\n\n")
	rows := m.ctrl.Rankings(m.period, 10)
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("no games yet"))
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%2d. %-12s %3d  %s\n", r.Rank, r.Name, r.Score, formatMillis(r.Timestamp)))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
