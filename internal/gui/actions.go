package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"

	"inputform.app/inputform"
	"inputform.app/inputform/internal/seedfile"
)

// askAction opens the example form on a copy of the seed data and shows
// the accepted values.
func askAction(s *FyneScreen) {
	if !s.beginAsk() {
		return
	}
	defer s.endAsk()

	data := s.seed.Clone()
	opts := s.formOptions()
	opts.LogOutput = s.logWriter()

	accepted, err := inputform.ShowInputForm(s.ctx, s.Current, "Example", data, opts)
	if err != nil {
		s.Log().Error().Str("Method", "askAction").Err(err).Msg("form failed")
		fyne.Do(func() {
			check(s.Current, err)
		})
		return
	}

	if !accepted {
		s.Log().Info().Str("Method", "askAction").Msg("form cancelled")
		fyne.Do(func() {
			s.Result.ParseMarkdown("_Cancelled._")
		})
		return
	}

	if s.Output != nil {
		if err := seedfile.Write(s.Output, data); err != nil {
			s.Log().Error().Str("Method", "askAction").Err(err).Msg("failed to write result")
		}
	}

	md := resultMarkdown(data)
	fyne.Do(func() {
		s.Result.ParseMarkdown(md)
	})
}

func (p *FyneScreen) beginAsk() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.asking {
		return false
	}
	p.asking = true
	return true
}

func (p *FyneScreen) endAsk() {
	p.mu.Lock()
	p.asking = false
	p.mu.Unlock()
}

func resultMarkdown(data *inputform.Data) string {
	var sb strings.Builder
	for _, e := range data.Entries() {
		fmt.Fprintf(&sb, "- **%s**: %s\n", e.Name, formatValue(e.Value))
	}
	return sb.String()
}

func formatValue(v inputform.Value) string {
	switch t := v.(type) {
	case inputform.Color:
		return fmt.Sprintf("#%02x%02x%02x", t.R, t.G, t.B)
	case inputform.Text:
		return fmt.Sprintf("%q", string(t))
	case inputform.Float:
		return fmt.Sprintf("%g", float64(t))
	case inputform.List:
		return strings.Join(t, ", ")
	case inputform.Vector2:
		return fmt.Sprintf("(%g, %g)", t[0], t[1])
	case inputform.Vector3:
		return fmt.Sprintf("(%g, %g, %g)", t[0], t[1], t[2])
	}
	return fmt.Sprint(v)
}
