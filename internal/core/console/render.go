package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"parcel-tracker/internal/features/parcels/domain"

	"github.com/charmbracelet/lipgloss"
)

const rule = "-----------------------------------"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	fail   lipgloss.Style
}

// newStyles returns the menu styles. With color disabled every style
// renders text unchanged.
func newStyles(out io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, header: plain, fail: plain}
	}

	r := lipgloss.NewRenderer(out)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (d *Dispatcher) print(s string) {
	fmt.Fprint(d.out, s)
}

func (d *Dispatcher) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Dispatcher) failure(s string) {
	d.println(d.styles.fail.Render(s))
}

// section prints a "----- Name -----" banner.
func (d *Dispatcher) section(name string) {
	d.println("")
	d.println(d.styles.header.Render(rule + " " + name + " " + rule))
	d.println("")
}

func (d *Dispatcher) menu(options []string) {
	for _, o := range options {
		d.println(o)
	}
	d.println("")
}

// listing prints one block per parcel, in the order given.
func (d *Dispatcher) listing(parcels []domain.Parcel) {
	if len(parcels) == 0 {
		d.println(msgNoRecords)
		return
	}

	var b strings.Builder
	for _, p := range parcels {
		b.WriteString("\n")
		b.WriteString("ID: " + strconv.Itoa(p.ID) + "\n")
		b.WriteString("Weight: " + formatWeight(p.Weight) + "\n")
		b.WriteString("Destination: " + p.Destination + "\n")
	}
	d.println(b.String())
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
