// Package viz draws datasets as terminal bar charts.
//
// [BarChart] turns a slice of values and a parallel emphasis mask into
// coloured block glyphs, with eighth-cell resolution on the top of each bar.
// Rendering is a pure function of its inputs.
//
// # Sinks
//
// [TerminalSink] implements stepper.Sink by redrawing the chart on every
// frame, for the headless run command. The interactive UI lives in package
// tui and reuses the styles and themes defined here.
//
// # Themes
//
//	classic   - blue bars, red compare, green swap, purple merge
//	cyberpunk - neon
//	retro     - green phosphor
//	ocean
//	sunset
package viz
