package tui

import (
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

const paletteRows = 8

type palette struct {
	open    bool
	input   textinput.Model
	cmds    []command
	matches fuzzy.Matches
	cursor  int
}

func newPalette() palette {
	ti := textinput.New()
	ti.Placeholder = "type a command"
	ti.Prompt = "› "
	ti.CharLimit = 64
	p := palette{input: ti, cmds: commands()}
	p.filter()
	return p
}

func (p *palette) names() []string {
	out := make([]string, len(p.cmds))
	for i, c := range p.cmds {
		out[i] = c.name
	}
	return out
}

// filter ranks commands against the query; an empty query lists all of them.
func (p *palette) filter() {
	q := strings.TrimSpace(p.input.Value())
	if q == "" {
		p.matches = make(fuzzy.Matches, len(p.cmds))
		for i, c := range p.cmds {
			p.matches[i] = fuzzy.Match{Str: c.name, Index: i}
		}
	} else {
		p.matches = fuzzy.Find(q, p.names())
	}
	if p.cursor >= len(p.matches) {
		p.cursor = max(0, len(p.matches)-1)
	}
}

func (m *Model) openPalette() tea.Cmd {
	m.palette.open = true
	m.palette.cursor = 0
	m.palette.input.SetValue("")
	m.palette.filter()
	return m.palette.input.Focus()
}

func (m *Model) closePalette() {
	m.palette.open = false
	m.palette.input.Blur()
}

func (m Model) updatePalette(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := &m.palette
	switch msg.String() {
	case "esc", "ctrl+k":
		m.closePalette()
		return m, nil
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return m, nil
	case "enter":
		if len(p.matches) == 0 {
			m.status = "no matching command"
			return m, nil
		}
		c := p.cmds[p.matches[p.cursor].Index]
		m.closePalette()
		m.log.Debug().Str("command", c.name).Msg("palette")
		cmd := c.run(&m)
		return m, cmd
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filter()
	return m, cmd
}

func (p palette) view(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Commands"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	if len(p.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
	}
	start := max(0, p.cursor-paletteRows+1)
	for i := start; i < len(p.matches) && i < start+paletteRows; i++ {
		mt := p.matches[i]
		c := p.cmds[mt.Index]
		line := highlight(c.name, mt.MatchedIndexes)
		key := dimStyle.Render(" " + c.key)
		if i == p.cursor {
			line = pickStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString("\n" + line + key)
	}
	return boxStyle.Width(width).Render(b.String())
}

// highlight underlines the matched byte positions of s.
func highlight(s string, idx []int) string {
	if len(idx) == 0 {
		return s
	}
	hit := make(map[int]bool, len(idx))
	for _, i := range idx {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
