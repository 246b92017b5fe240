package templates

import "strings"

// Shared template fragments. Every domain template fills the same slots in
// the same order: institutional header, report info, optional domain note,
// optional summary, section loop, footer. Domain variants are baked at
// registration time by substituting the accent, label and note tokens, so
// each domain owns a distinct template source conforming to one slot
// contract.

const docStart = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11px; color: #222; }
  .report-header { border-bottom: 3px solid __ACCENT__; padding-bottom: 10px; margin-bottom: 14px; }
  .report-header .institution { font-size: 15px; font-weight: bold; color: __ACCENT__; }
  .report-header .tenant { font-size: 11px; color: #555; }
  .report-header h1 { font-size: 17px; margin-top: 8px; }
  .report-header .subtitle { font-size: 12px; color: #555; }
  .report-info { display: flex; justify-content: space-between; background: #f5f6f8; padding: 8px 10px; margin-bottom: 14px; font-size: 10px; }
  .domain-note { font-size: 10px; font-style: italic; color: #666; margin-bottom: 10px; }
  .summary { margin-bottom: 16px; }
  .summary h2, .section h2 { font-size: 13px; color: __ACCENT__; border-bottom: 1px solid #ddd; padding-bottom: 3px; margin-bottom: 6px; }
  .summary .metrics { display: flex; flex-wrap: wrap; gap: 8px; }
  .summary .metric { border: 1px solid #ddd; border-left: 3px solid __ACCENT__; padding: 6px 10px; min-width: 120px; }
  .summary .metric .name { font-size: 9px; text-transform: uppercase; color: #777; }
  .summary .metric .value { font-size: 13px; font-weight: bold; }
  .section { margin-bottom: 18px; page-break-inside: avoid; }
  table { width: 100%; border-collapse: collapse; font-size: 10px; }
  th { background: __ACCENT__; color: #fff; padding: 5px 6px; text-align: left; }
  td { border: 1px solid #ddd; padding: 4px 6px; }
  tr:nth-child(even) td { background: #fafafa; }
  td.num, th.num { text-align: right; }
  td.center, th.center { text-align: center; }
  td.alert { color: #9c0006; background: #ffc7ce !important; font-weight: bold; }
  tfoot td { background: #f5f6f8; font-weight: bold; text-align: right; }
  .chart { margin-top: 4px; }
  .chart .bar-row { display: flex; align-items: center; margin-bottom: 3px; }
  .chart .bar-label { width: 140px; font-size: 9px; text-align: right; padding-right: 6px; }
  .chart .bar-track { flex: 1; background: #eee; }
  .chart .bar { background: __ACCENT__; color: #fff; font-size: 9px; padding: 2px 4px; white-space: nowrap; }
  .text-block { font-size: 11px; line-height: 1.5; }
  .report-footer { margin-top: 20px; border-top: 1px solid #ddd; padding-top: 6px; font-size: 9px; color: #777; display: flex; justify-content: space-between; }
</style>
</head>
<body>
`

const headerBlock = `<div class="report-header">
  <div class="institution">{{ institution }} &mdash; {{ abbrev }}</div>
  <div class="tenant">{{ tenant.name }}{% if tenant.region %} &middot; {{ tenant.region }}{% endif %}</div>
  <h1>__LABEL__ &mdash; {{ title }}</h1>
  {% if subtitle %}<div class="subtitle">{{ subtitle }}</div>{% endif %}
</div>
`

const infoBlock = `<div class="report-info">
  <span>Période : {{ period_label }}</span>
  <span>Généré par : {{ generated_by }}</span>
  <span>Le : {{ generated_at }}</span>
</div>
`

const noteBlock = `<div class="domain-note">__NOTE__</div>
`

const summaryBlock = `{% if summary %}<div class="summary">
  <h2>Synthèse</h2>
  <div class="metrics">
    <div class="metric"><div class="name">Enregistrements</div><div class="value">{{ summary.total_records }}</div></div>
    {% if summary.total_amount %}<div class="metric"><div class="name">Montant total</div><div class="value">{{ summary.total_amount }}</div></div>{% endif %}
    {% if summary.average_amount %}<div class="metric"><div class="name">Montant moyen</div><div class="value">{{ summary.average_amount }}</div></div>{% endif %}
    {% if summary.growth_rate %}<div class="metric"><div class="name">Évolution</div><div class="value">{{ summary.growth_rate }}</div></div>{% endif %}
    {% for metric in summary.metrics %}
    <div class="metric"><div class="name">{{ metric.name }}</div><div class="value">{{ metric.value }}{% if metric.unit %} {{ metric.unit }}{% endif %}{% if metric.trend %} {{ metric.trend }}{% endif %}</div></div>
    {% endfor %}
  </div>
</div>{% endif %}
`

const sectionsBlock = `{% for section in sections %}<div class="section">
  <h2>{{ section.title }}</h2>
  {% if section.kind == "table" %}
  <table>
    <thead><tr>{% for column in section.columns %}<th class="{{ column.class }}">{{ column.title }}</th>{% endfor %}</tr></thead>
    <tbody>
    {% for row in section.rows %}<tr>{% for cell in row %}<td class="{{ cell.class }}">{{ cell.value }}</td>{% endfor %}</tr>
    {% endfor %}
    </tbody>
    <tfoot><tr><td colspan="{{ section.colspan }}">{% count_by section.raw_rows %} lignes{% if section.total_key %} &middot; Total : {% sum_by section.raw_rows by section.total_key %}{% endif %}</td></tr></tfoot>
  </table>
  {% elif section.kind == "chart" %}
  <div class="chart">
    {% for bar in section.bars %}<div class="bar-row">
      <div class="bar-label">{{ bar.label }}</div>
      <div class="bar-track"><div class="bar" style="width: {{ bar.value|progress:section.max }}%">{{ bar.display }}</div></div>
    </div>
    {% endfor %}
  </div>
  {% elif section.kind == "image" %}
  <img src="{{ section.source }}" alt="{{ section.title }}" style="max-width: 100%">
  {% else %}
  <div class="text-block">{{ section.text }}</div>
  {% endif %}
</div>
{% endfor %}`

const footerBlock = `<div class="report-footer">
  <span>{{ institution }}</span>
  <span>{{ tenant.name }} &middot; {{ period_label }}</span>
</div>
</body>
</html>
`

// buildTemplate bakes one domain's variant into the shared slot layout.
func buildTemplate(spec domainSpec) string {
	src := docStart + headerBlock + infoBlock

	if spec.note != "" {
		src += noteBlock
	}

	src += summaryBlock + sectionsBlock + footerBlock

	return strings.NewReplacer(
		"__ACCENT__", spec.accent,
		"__LABEL__", spec.label,
		"__NOTE__", spec.note,
	).Replace(src)
}
