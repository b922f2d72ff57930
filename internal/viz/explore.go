package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/splinekit/internal/spline"
)

// Explorer is an interactive terminal view of a spline: pan and zoom
// along the argument axis, cycle through value components, and watch
// the extrapolation regime past the domain edges.
type Explorer struct {
	name   string
	spl    *spline.Spline[spline.Vec]
	lo, hi float64
	comp   int
	width  int
	height int
}

func NewExplorer(name string, s *spline.Spline[spline.Vec]) Explorer {
	lo, hi := s.Domain()
	span := hi - lo
	return Explorer{
		name:   name,
		spl:    s,
		lo:     lo - 0.25*span,
		hi:     hi + 0.25*span,
		width:  80,
		height: 24,
	}
}

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
		return e, nil
	case tea.KeyMsg:
		span := e.hi - e.lo
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "left", "h":
			e.lo -= 0.1 * span
			e.hi -= 0.1 * span
		case "right", "l":
			e.lo += 0.1 * span
			e.hi += 0.1 * span
		case "+", "=":
			e.lo += 0.125 * span
			e.hi -= 0.125 * span
		case "-":
			e.lo -= 0.25 * span
			e.hi += 0.25 * span
		case "tab":
			e.comp = (e.comp + 1) % e.spl.Dim()
		case "0":
			lo, hi := e.spl.Domain()
			span := hi - lo
			e.lo, e.hi = lo-0.25*span, hi+0.25*span
		}
	}
	return e, nil
}

func (e Explorer) View() string {
	lo, hi := e.spl.Domain()
	width := e.width - 10
	if width < 20 {
		width = 20
	}

	count := width
	args, vals := e.spl.Sample(e.lo, e.hi, count)
	rows := make([][]float64, len(vals))
	for i, v := range vals {
		row := make([]float64, v.Dim())
		for d := range row {
			row[d] = v.At(d)
		}
		rows[i] = row
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", e.name)))
	b.WriteString(dim.Render(fmt.Sprintf("  %s · domain [%.3g, %.3g] · component %d/%d",
		e.spl.Kind(), lo, hi, e.comp+1, e.spl.Dim())))
	b.WriteString("\n\n")

	data := make([]float64, len(rows))
	for i, row := range rows {
		data[i] = row[e.comp]
	}
	b.WriteString(plotLine(data, width, e.height-8))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("view [%.3g, %.3g]", args[0], args[len(args)-1])))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("←/→ pan · +/- zoom · tab component · 0 reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the explorer exits.
func (e Explorer) Run() error {
	_, err := tea.NewProgram(e, tea.WithAltScreen()).Run()
	return err
}
