package flattable

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/format"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

func testFormatter() *format.Formatter {
	return format.New(format.Config{Locale: "fr-FR", Currency: "XOF", Timezone: "UTC"})
}

func sampleData() model.ReportData {
	return model.ReportData{
		Title:       "Exécution budgétaire",
		PeriodLabel: "Janvier 2026",
		GeneratedAt: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
		Tenant:      model.Tenant{Name: "CROU Niamey"},
		Sections: []model.ReportSection{
			{
				Title: "Dépenses par poste",
				Kind:  cn.SectionTable,
				Columns: []model.ReportColumn{
					{Key: "poste", Title: "Poste", Type: "text"},
					{Key: "montant", Title: "Montant", Type: "currency"},
				},
				Data: []map[string]any{
					{"poste": "Restauration", "montant": 7500000},
					{"poste": "Hébergement"},
				},
			},
			{
				Title: "Note",
				Kind:  cn.SectionText,
				Text:  "Section non tabulaire, absente du CSV.",
			},
			{
				Title: "Repas servis",
				Kind:  cn.SectionChart,
				Chart: &model.ChartConfig{
					Labels:   []string{"Niamey"},
					Datasets: []model.ChartDataset{{Label: "Repas", Values: []float64{4000}}},
				},
			},
		},
	}
}

func flatConfig() model.ReportConfig {
	return model.ReportConfig{
		OutputKind: cn.OutputFlatTable,
		Domain:     cn.DomainFinancial,
		TenantID:   "crou-niamey",
		Options:    model.ReportOptions{IncludeCharts: true},
	}
}

func generate(t *testing.T, cfg model.ReportConfig, data model.ReportData) [][]string {
	t.Helper()

	backend := NewBackend(zap.NewNop().Sugar())

	buf, err := backend.Generate(context.Background(), cfg, data, testFormatter())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(buf))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	require.NoError(t, err)

	return records
}

func TestGenerateFlatTable(t *testing.T) {
	t.Parallel()

	records := generate(t, flatConfig(), sampleData())

	// Blank separator records are dropped by the reader; what remains is
	// the title record followed by each tabular section in order.
	require.Len(t, records, 8)

	assert.Equal(t, []string{"Exécution budgétaire", "Janvier 2026", "CROU Niamey"}, records[0])
	assert.Equal(t, []string{"Dépenses par poste"}, records[1])
	assert.Equal(t, []string{"Poste", "Montant"}, records[2])
	assert.Equal(t, []string{"Restauration", "7 500 000 FCFA"}, records[3])
	assert.Equal(t, []string{"Hébergement", cn.EmptyPlaceholder}, records[4])

	// Chart degraded to its dataset table; the text section is skipped.
	assert.Equal(t, []string{"Repas servis"}, records[5])
	assert.Equal(t, []string{"Libellé", "Repas"}, records[6])
	assert.Equal(t, []string{"Niamey", "4 000"}, records[7])
}

func TestGenerateFlatTableEmptySections(t *testing.T) {
	t.Parallel()

	data := sampleData()
	data.Sections = nil

	records := generate(t, flatConfig(), data)

	require.Len(t, records, 1)
	assert.Equal(t, "Exécution budgétaire", records[0][0])
}

func TestGenerateFlatTableChartExcludedWithoutFlag(t *testing.T) {
	t.Parallel()

	cfg := flatConfig()
	cfg.Options.IncludeCharts = false

	records := generate(t, cfg, sampleData())

	// Only the title record and the table section remain.
	require.Len(t, records, 5)
	for _, record := range records {
		assert.NotEqual(t, "Repas servis", record[0])
	}
}

func TestGenerateFlatTableErrorSentinel(t *testing.T) {
	t.Parallel()

	err := wrapErr(errors.New("disk full"))

	assert.True(t, errors.Is(err, cn.ErrFlatTableGeneration))
	assert.Contains(t, err.Error(), "flat-table generation failed")
}
