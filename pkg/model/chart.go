package model

// ChartDataset is one labelled value series.
type ChartDataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ChartConfig describes a chart section. Both backends consume the same
// shape; the workbook and flat-table backends degrade it to its underlying
// tabular data while the document backend rasterizes it.
type ChartConfig struct {
	Kind     string         `json:"kind"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	Options  map[string]any `json:"options,omitempty"`
}

// MaxValue returns the largest value across all datasets, used to scale
// chart geometry. Returns 0 for an empty chart.
func (c ChartConfig) MaxValue() float64 {
	max := 0.0

	for _, ds := range c.Datasets {
		for _, v := range ds.Values {
			if v > max {
				max = v
			}
		}
	}

	return max
}

// Table flattens the chart into rows of label plus one value per dataset,
// the degraded representation used by the non-rasterizing backends.
func (c ChartConfig) Table() []map[string]any {
	rows := make([]map[string]any, 0, len(c.Labels))

	for i, label := range c.Labels {
		row := map[string]any{"label": label}

		for _, ds := range c.Datasets {
			if i < len(ds.Values) {
				row[ds.Label] = ds.Values[i]
			}
		}

		rows = append(rows, row)
	}

	return rows
}
