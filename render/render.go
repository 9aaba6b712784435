// Package render writes daily almanac pages as fixed-width plain
// text. It consumes the engine's DayResult structures verbatim; the
// column widths come from the formatted values themselves.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/subtlepseudonym/ephemeris"
)

const pageTemplate = `{{.Weekday}}, {{.Date}} (day {{.DayOfYear}}, {{if .OddPage}}odd{{else}}even{{end}} page)
sunrise {{.RiseSet.Sunrise.Format "15:04"}} UT, sunset {{.RiseSet.Sunset.Format "15:04"}} UT

UT  Aries     Sun               Moon                                 Venus             Mars              Jupiter           Saturn            Star
    GHA       GHA      Dec      GHA      Dec      dGHA  dDec  HP    GHA      Dec      GHA      Dec      GHA      Dec      GHA      Dec
{{range .Rows -}}
{{printf "%02d" .Hour}}  {{.Aries}}  {{.Sun.GHA}} {{.Sun.Dec}}  {{.Moon.GHA}} {{.Moon.Dec}} {{.Moon.DeltaGHA}} {{.Moon.DeltaDec}} {{printf "%5s" .Moon.HP}}  {{.Venus.GHA}} {{.Venus.Dec}}  {{.Mars.GHA}} {{.Mars.Dec}}  {{.Jupiter.GHA}} {{.Jupiter.Dec}}  {{.Saturn.GHA}} {{.Saturn.Dec}}  {{with .Star}}{{printf "%3d" .Number}} {{.SHA}} {{.Dec}} {{.Name}}{{else}}  -{{end}}
{{end}}
Meridian transits
Aries   {{.Transits.Aries}}
Sun     {{.Transits.Sun.Transit}}  d {{.Transits.Sun.DeltaGHA}} {{.Transits.Sun.DeltaDec}}  HP {{.Transits.Sun.HP}}  SD {{.Transits.SunRadius}}
Moon    {{.Transits.Moon.Transit}}  age {{.Transits.MoonAge}}
Venus   {{.Transits.Venus.Transit}}  d {{.Transits.Venus.DeltaGHA}} {{.Transits.Venus.DeltaDec}}  HP {{.Transits.Venus.HP}}
Mars    {{.Transits.Mars.Transit}}  d {{.Transits.Mars.DeltaGHA}} {{.Transits.Mars.DeltaDec}}  HP {{.Transits.Mars.HP}}
Jupiter {{.Transits.Jupiter.Transit}}  d {{.Transits.Jupiter.DeltaGHA}} {{.Transits.Jupiter.DeltaDec}}  HP {{.Transits.Jupiter.HP}}
Saturn  {{.Transits.Saturn.Transit}}  d {{.Transits.Saturn.DeltaGHA}} {{.Transits.Saturn.DeltaDec}}  HP {{.Transits.Saturn.HP}}
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// Page writes one day's table to w.
func Page(w io.Writer, day *ephemeris.DayResult) error {
	err := page.Execute(w, day)
	if err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// WriteAll renders every day to its own file in dir, named by date.
func WriteAll(dir string, days []*ephemeris.DayResult) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, day := range days {
		filename := filepath.Join(dir, fmt.Sprintf("almanac-%s.txt", day.Date))
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("create page file: %w", err)
		}

		err = Page(f, day)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("write page %s: %w", day.Date, err)
		}
	}

	return nil
}
