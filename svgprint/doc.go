// Package svgprint renders a deployed, routed network as a single SVG
// document: a white background, dashed gray channel segments (one per
// unordered sensor pair), blue routing edges (sensor → parent), a
// red-filled yellow-bordered disc for the sink, yellow-filled
// green-bordered discs for the other sensors, and a centered blue title
// below the plot area.
//
// The scale maps region coordinates to pixels. Node discs are 8 px with
// a 1 px stroke; the title renders at 20 px.
package svgprint
