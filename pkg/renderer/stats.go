package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mkbrown/photonmap/pkg/log"
	"github.com/olekukonko/tablewriter"
)

// PassStats summarizes one photon or camera pass for the post-render
// report.
type PassStats struct {
	Name        string
	PhotonCount int
	Elapsed     time.Duration
}

// RunStats summarizes a full render for the post-render report.
type RunStats struct {
	Width, Height   int
	SamplesPerPixel int
	Passes          []PassStats
	TotalElapsed    time.Duration
}

// DisplayStats renders stats as a table and logs it at notice level.
func DisplayStats(logger log.Logger, stats RunStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Photons", "Time"})

	for _, p := range stats.Passes {
		table.Append([]string{
			p.Name,
			fmt.Sprintf("%d", p.PhotonCount),
			p.Elapsed.String(),
		})
	}
	table.SetFooter([]string{fmt.Sprintf("%dx%d @ %d spp", stats.Width, stats.Height, stats.SamplesPerPixel), "TOTAL", stats.TotalElapsed.String()})

	table.Render()
	if logger != nil {
		logger.Noticef("render statistics\n%s", buf.String())
	}
}
