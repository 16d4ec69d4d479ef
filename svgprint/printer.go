package svgprint

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/sensornet/geometry"
	"github.com/katalvlaran/sensornet/network"
)

// Drawing constants of the reference rendering.
const (
	nodeRadius   = 8  // px, with a 1 px stroke baked into the styles
	titleFontPx  = 20 // px
	titleStripPx = 2 * titleFontPx

	backgroundStyle = "fill:white"
	channelStyle    = "stroke:gray;stroke-width:1;stroke-dasharray:4,4"
	routingStyle    = "stroke:blue;stroke-width:1"
	sinkStyle       = "fill:red;stroke:yellow;stroke-width:1"
	sensorStyle     = "fill:yellow;stroke:green;stroke-width:1"
	titleStyle      = "fill:blue;font-size:20px;text-anchor:middle"
)

// Print writes one <svg> document for net onto w. The region is mapped
// onto a canvas of region size × scale pixels, with a title strip
// appended below the plot area.
//
// Channels draw once per unordered pair (i < j); routing edges draw per
// sensor → parent link, so an unrouted network renders channels only.
//
// Complexity: O(n + channels).
func Print(w io.Writer, net *network.Network, title string, region geometry.Region, scale float64) {
	plotW := px(region.Width() * scale)
	plotH := px(region.Height() * scale)

	// Region → pixel mapping. SVG y grows downward; the region's MinY
	// edge maps to the top of the plot.
	mapX := func(p geometry.Position) int { return px((p.X - region.MinX) * scale) }
	mapY := func(p geometry.Position) int { return px((p.Y - region.MinY) * scale) }

	canvas := svg.New(w)
	canvas.Start(plotW, plotH+titleStripPx)

	// Background behind plot and title strip.
	canvas.Rect(0, 0, plotW, plotH+titleStripPx, backgroundStyle)

	// Channels, once per unordered pair.
	for i := 0; i < net.NumSensors(); i++ {
		pi := net.Position(i)
		for _, j := range net.Neighbors(i) {
			if j <= i {
				continue
			}
			pj := net.Position(j)
			canvas.Line(mapX(pi), mapY(pi), mapX(pj), mapY(pj), channelStyle)
		}
	}

	// Routing edges, sensor → parent.
	for i := 0; i < net.NumSensors(); i++ {
		parent := net.Parent(i)
		if parent == network.NoParent {
			continue
		}
		pi, pp := net.Position(i), net.Position(parent)
		canvas.Line(mapX(pi), mapY(pi), mapX(pp), mapY(pp), routingStyle)
	}

	// Nodes on top of the edges; the sink draws with its own colors.
	for i := 0; i < net.NumSensors(); i++ {
		style := sensorStyle
		if i == network.SinkIndex {
			style = sinkStyle
		}
		p := net.Position(i)
		canvas.Circle(mapX(p), mapY(p), nodeRadius, style)
	}

	// Centered title below the plot area.
	canvas.Text(plotW/2, plotH+titleStripPx-titleFontPx/2, title, titleStyle)

	canvas.End()
}

// px rounds a scaled coordinate to the nearest pixel.
func px(v float64) int { return int(math.Round(v)) }
