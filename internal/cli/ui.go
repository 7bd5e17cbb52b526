package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/stremovskyy/go-nvp/internal/jsonutil"
	"github.com/stremovskyy/go-nvp/response"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

// printEnvelope writes the ack line, every pair and the error records of e.
func printEnvelope(w io.Writer, e *response.Envelope) {
	ack := string(e.Ack())
	switch {
	case e.Ack().IsFailure():
		fmt.Fprintln(w, styleError.Render(iconError)+" "+styleTitle.Render(ack))
	case e.IsSuccess() && len(e.Errors()) == 0:
		fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+styleTitle.Render(ack))
	default:
		if ack == "" {
			ack = "no ACK"
		}
		fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleTitle.Render(ack))
	}

	values := e.Values()
	width := 0
	for _, k := range values.Keys() {
		if len(k) > width {
			width = len(k)
		}
	}
	keyStyle := styleKey.Width(width + 1)
	values.Range(func(key, value string) bool {
		fmt.Fprintln(w, "  "+keyStyle.Render(key)+" "+styleValue.Render(value))
		return true
	})

	errs := e.Errors()
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d error(s):", len(errs))))
	for _, er := range errs {
		line := fmt.Sprintf("  [%d] %s", er.Index, er.String())
		if er.SeverityCode != "" {
			line += styleDim.Render(" (" + er.SeverityCode + ")")
		}
		fmt.Fprintln(w, styleError.Render(line))
	}
}

func printDryRun(w io.Writer, method, url, payload string) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleTitle.Render("dry run")+" "+styleDim.Render(method+" "+url))
	fmt.Fprintln(w, "  "+styleValue.Render(payload))
}

type jsonPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type jsonEnvelope struct {
	Ack    string           `json:"ack"`
	Pairs  []jsonPair       `json:"pairs"`
	Errors []response.Error `json:"errors,omitempty"`
}

// printJSON keeps the wire order of the pairs.
func printJSON(w io.Writer, e *response.Envelope) error {
	out := jsonEnvelope{Ack: string(e.Ack()), Pairs: []jsonPair{}, Errors: e.Errors()}
	e.Values().Range(func(key, value string) bool {
		out.Pairs = append(out.Pairs, jsonPair{Key: key, Value: value})
		return true
	})
	b, err := jsonutil.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
