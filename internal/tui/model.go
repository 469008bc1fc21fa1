package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serhangurakan/life-timer/internal/core"
	"github.com/serhangurakan/life-timer/internal/session"
	"github.com/serhangurakan/life-timer/internal/ui"
)

type watchModel struct {
	sess     *session.Session
	interval time.Duration

	width  int
	height int

	snap    core.Snapshot
	lastLog string
}

type tickMsg time.Time

func newWatchModel(sess *session.Session, interval time.Duration) watchModel {
	return watchModel{
		sess:     sess,
		interval: interval,
		snap:     sess.View(),
		lastLog:  "Watching.",
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.sess.Tick()
		m.snap = m.sess.View()
		return m, m.tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "w":
			return m.switchMode(core.ModeWork)
		case "p":
			return m.switchMode(core.ModePlay)
		case "s":
			return m.switchMode(core.ModeNothing)
		case "x":
			m.sess.ApplyPenalty()
			m.snap = m.sess.View()
			m.lastLog = "Penalty applied (-5m work, -2m30s play)."
			return m, nil
		}
	}
	return m, nil
}

func (m watchModel) switchMode(target core.Mode) (tea.Model, tea.Cmd) {
	if err := m.sess.RequestMode(target); err != nil {
		m.lastLog = ui.Warn.Render(ui.IconWarn + " " + err.Error())
	} else {
		m.lastLog = fmt.Sprintf("Switched to %s at %s.", target, time.Now().Format("15:04:05"))
	}
	m.snap = m.sess.View()
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconClock, "Life Timer") + "\n\n")
	b.WriteString(ui.LabelValue("Mode", ui.ModeText(string(m.snap.Mode))) + "\n")
	b.WriteString(ui.LabelValue("Play balance", ui.Gold.Render(ui.FormatSeconds(m.snap.PlayBalanceSeconds))) + "\n")
	b.WriteString(ui.LabelValue("Work total", ui.FormatSeconds(m.snap.WorkElapsedSeconds)) + "\n")
	b.WriteString(ui.LabelValue("Quests", len(m.snap.Quests)) + "\n")
	b.WriteString(ui.LabelValue("Inventory", fmt.Sprintf("%d item(s)", len(m.snap.Inventory))) + "\n")

	body := ui.Panel.Render(b.String())

	footer := ui.Muted.Render("w work · p play · s stop · x penalty · q quit")
	log := ui.Muted.Render(m.lastLog)

	return body + "\n" + log + "\n" + footer + "\n"
}
