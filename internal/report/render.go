// Package report renders diagnostic results and learner statistics for the
// terminal.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/LNshuti/adaptest/internal/curriculum"
	"github.com/LNshuti/adaptest/internal/diagnostic"
	"github.com/LNshuti/adaptest/internal/mastery"
	"github.com/LNshuti/adaptest/internal/store"
)

// Diagnostic renders a completed diagnostic result as a framed report.
func Diagnostic(r *diagnostic.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Diagnostic Report"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d items in %s",
		r.TotalItems, r.Elapsed.Round(time.Second))))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Section ability"))
	b.WriteString("\n")
	for _, section := range curriculum.AllSections() {
		theta, ok := r.SectionAbility[section]
		if !ok {
			continue
		}
		b.WriteString(bodyStyle.Render(fmt.Sprintf("  %-12s %s",
			curriculum.SectionDisplayName(section), thetaBar(theta))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Skills"))
	b.WriteString("\n")
	for _, est := range sortedSkills(r) {
		name := skillName(est.SkillID)
		line := fmt.Sprintf("  %-28s θ=%+.2f  SE=%.2f  %d items  %3.0f%% correct",
			name, est.Theta, est.SE, est.Items, est.Accuracy*100)
		if est.Items == 0 {
			line = fmt.Sprintf("  %-28s (not measured)", name)
			b.WriteString(dimStyle.Render(line))
		} else {
			b.WriteString(bodyStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(r.WeakestSkills) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Focus areas"))
		b.WriteString("\n")
		for _, id := range r.WeakestSkills {
			b.WriteString(weakStyle.Render("  • " + skillName(id)))
			b.WriteString("\n")
		}
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Stats renders lifetime per-skill statistics alongside current mastery
// levels.
func Stats(stats []store.SkillStats, states map[string]mastery.State) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Learning Statistics"))
	b.WriteString("\n\n")

	if len(stats) == 0 {
		b.WriteString(dimStyle.Render("No attempts recorded yet."))
		return cardStyle.Render(b.String())
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-28s %8s %8s  %s",
		"Skill", "Attempts", "Correct", "Mastery")))
	b.WriteString("\n")
	for _, st := range stats {
		label := "—"
		if s, ok := states[st.SkillID]; ok {
			label = mastery.Classify(s.PKnown).Label()
		}
		b.WriteString(bodyStyle.Render(fmt.Sprintf("  %-28s %8d %7.0f%%  ",
			skillName(st.SkillID), st.Attempts, st.Accuracy()*100)))
		b.WriteString(levelStyle(label).Render(label))
		b.WriteString("\n")
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// thetaBar draws a crude ability gauge over [-3, +3].
func thetaBar(theta float64) string {
	const width = 25
	pos := int((theta + 3) / 6 * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	style := weakStyle
	if theta >= 0 {
		style = strongStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		dimStyle.Render(strings.Repeat("─", pos)),
		style.Render("●"),
		dimStyle.Render(strings.Repeat("─", width-pos-1)),
		bodyStyle.Render(fmt.Sprintf(" %+.2f", theta)))
}

func sortedSkills(r *diagnostic.Result) []diagnostic.SkillEstimate {
	out := make([]diagnostic.SkillEstimate, 0, len(r.Skills))
	for _, est := range r.Skills {
		out = append(out, est)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillID < out[j].SkillID })
	return out
}

func skillName(id string) string {
	sk, err := curriculum.GetSkill(id)
	if err != nil {
		return id
	}
	return sk.Name
}
