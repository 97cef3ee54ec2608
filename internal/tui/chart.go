package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartHeight = 10
	maxBars     = 12
	barLabelLen = 6
)

// buildChart redraws the session bar chart: one bar per session, most
// recent last, height = elapsed seconds.
func (a *App) buildChart() {
	if !a.showChart {
		return
	}
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	sessions := a.sessions
	if len(sessions) > maxBars {
		sessions = sessions[len(sessions)-maxBars:]
	}

	var bars []barchart.BarData
	for i, s := range sessions {
		color := colorPrimary
		if i%2 == 1 {
			color = colorTimer
		}
		bars = append(bars, barchart.BarData{
			Label: truncate(s.Name, barLabelLen),
			Values: []barchart.BarValue{{
				Name:  s.Name,
				Value: float64(s.ElapsedSeconds),
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}

	if len(bars) == 0 {
		return
	}
	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a App) renderChart() string {
	if len(a.sessions) == 0 {
		return a.styles.empty.Width(max(10, a.width-4)).Render(emptySessions)
	}
	return a.chart.View()
}
