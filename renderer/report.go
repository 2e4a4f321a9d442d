package renderer

import (
	"io"
	"strings"

	"github.com/etnz/troop"
)

// ReportMarkdown renders every report of the dataset, one after the other.
// Sections with nothing to show are left out.
func ReportMarkdown(d *troop.Dataset) string {
	var b strings.Builder
	sections := []string{
		SummaryMarkdown(d),
		ScoutsMarkdown(d),
		ShortfallsMarkdown(d),
		VarietiesMarkdown(d),
		CookieShareMarkdown(d),
		BoothsMarkdown(d),
		TransfersMarkdown(d, false),
		HealthMarkdown(d),
	}
	for _, s := range sections {
		ConditionalBlock(&b, func(w io.Writer) bool {
			if b.Len() > 0 {
				io.WriteString(w, "\n\n")
			}
			io.WriteString(w, s)
			return s != ""
		})
	}
	return b.String()
}

// ScoutMarkdown renders the detailed report of one scout, or "" when the
// dataset does not know her.
func ScoutMarkdown(d *troop.Dataset, name string, opts ScoutRenderOptions) string {
	s := d.Scout(name)
	if s == nil {
		return ""
	}
	return RenderScout(NewScoutCard(s), opts)
}
