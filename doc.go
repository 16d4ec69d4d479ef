// Package sensornet studies routing-tree construction in wireless
// sensor networks.
//
// 🚀 What is sensornet?
//
//	A pure-Go laboratory for sink-rooted routing over randomly deployed
//	sensor fields:
//
//	  • Network model: sensors, range-derived channels, distance matrix
//	  • Routing builders: BFS leveling + eight parent-selection policies
//	  • Metric calculators: degree variance, robustness, channel
//	    quality, data aggregation, broadcast latency
//	  • Monte-Carlo sweeps producing averaged metric curves per policy
//
// ✨ Why sensornet?
//
//   - Deterministic      — ordered neighbor sets and a single seeded
//     random stream make every experiment reproducible
//   - Index-based        — sensors cross-reference by dense integer
//     index, never by pointer
//   - Closed dispatch    — policies and calculators are finite tagged
//     families, not open hierarchies
//
// Everything is organized under focused subpackages:
//
//	geometry/   — positions, Euclidean distance, regions
//	network/    — deployment, channels, routing state, connectivity
//	routing/    — BFS candidates, selection policies, tree builder
//	metrics/    — the five routing-quality calculators
//	placement/  — random placers and the minimum-range MST helper
//	svgprint/   — SVG rendering of deployments and routings
//	sweep/      — the Monte-Carlo experiment drivers
//
// Quick ASCII example:
//
//	    (0,0)═══(1,0)───(2,0)
//	     sink     │
//	            (1,1)
//
//	a sink, three sensors, and the routing tree laid over their channels.
//
// The cmd/ directory holds the two experiment CLIs: build-routings and
// calculate-routing-metrics.
//
//	go get github.com/katalvlaran/sensornet
package sensornet
