package chart

// LegendEntry is one toggleable legend item. Series is the index the
// entry controls in the animator's visibility slice.
type LegendEntry struct {
	Name   string
	Color  string
	Series int
}

// Legend returns one entry per series, in dataset order.
func (d *Dataset) Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(d.Series))
	for i := range d.Series {
		entries = append(entries, LegendEntry{
			Name:   d.Series[i].Name,
			Color:  d.Series[i].Color,
			Series: i,
		})
	}
	return entries
}

// Legend returns one entry per point cloud, in series order.
func (c *ScatterChart) Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(c.Series))
	for i := range c.Series {
		entries = append(entries, LegendEntry{
			Name:   c.Series[i].Name,
			Color:  c.Series[i].Color,
			Series: i,
		})
	}
	return entries
}
