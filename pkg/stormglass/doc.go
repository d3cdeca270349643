// Package stormglass implements queries to the Stormglass marine API. Hourly
// weather is requested as a time series per coordinate (see PointQuery), and
// tide extremes come from a separate endpoint as a series of low/high events.
// Each weather metric is keyed by data source; only the synthesized "sg"
// value is consulted. All times are UTC.
package stormglass
