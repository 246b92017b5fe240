package pongo

import (
	"fmt"
	"strconv"

	"github.com/flosch/pongo2/v6"
)

// AmountFormatterKey is the context key under which a caller may inject a
// func(float64) string applied to sum, avg, min and max results. Counts are
// plain integers and never go through the closure.
const AmountFormatterKey = "format_amount"

func init() {
	tags := []struct {
		name string
		op   string
	}{
		{"sum_by", "sum"},
		{"count_by", "count"},
		{"avg_by", "avg"},
		{"min_by", "min"},
		{"max_by", "max"},
	}

	for _, tag := range tags {
		if err := pongo2.RegisterTag(tag.name, makeAggregateTag(tag.op)); err != nil {
			panic(fmt.Sprintf("failed to register tag %q: %s", tag.name, err.Error()))
		}
	}
}

// aggregateTagNode holds the parsed pieces of an aggregate tag:
// {% sum_by rows by "amount" if condition %}.
type aggregateTagNode struct {
	op             string
	collectionExpr pongo2.IEvaluator
	fieldExpr      pongo2.IEvaluator
	filterExpr     pongo2.IEvaluator
}

// makeAggregateTag returns a parser for one aggregate operation over a row
// collection. All operations except count require a "by" field expression;
// an optional "if" expression filters rows first.
func makeAggregateTag(op string) pongo2.TagParser {
	return func(doc *pongo2.Parser, start *pongo2.Token, args *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
		collectionExpr, err := args.ParseExpression()
		if err != nil {
			return nil, err
		}

		var fieldExpr pongo2.IEvaluator

		if op != "count" {
			if t := args.Match(pongo2.TokenIdentifier, "by"); t == nil {
				return nil, args.Error("expected 'by' keyword", nil)
			}

			fieldExpr, err = args.ParseExpression()
			if err != nil {
				return nil, err
			}
		}

		var filterExpr pongo2.IEvaluator
		if t := args.Match(pongo2.TokenIdentifier, "if"); t != nil {
			filterExpr, err = args.ParseExpression()
			if err != nil {
				return nil, err
			}
		}

		return &aggregateTagNode{
			op:             op,
			collectionExpr: collectionExpr,
			fieldExpr:      fieldExpr,
			filterExpr:     filterExpr,
		}, nil
	}
}

// Execute evaluates the collection, aggregates and writes the result.
func (node *aggregateTagNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	rows, err := evaluateRows(ctx, node.collectionExpr)
	if err != nil {
		return err
	}

	result, err := node.aggregate(ctx, rows)
	if err != nil {
		return err
	}

	if _, werr := writer.WriteString(result); werr != nil {
		return ctx.Error("error writing output", nil)
	}

	return nil
}

func (node *aggregateTagNode) aggregate(ctx *pongo2.ExecutionContext, rows []map[string]any) (string, *pongo2.Error) {
	var total float64

	var count int

	var minVal, maxVal *float64

	for _, row := range rows {
		if !passesFilter(ctx, row, node.filterExpr) {
			continue
		}

		if node.op == "count" {
			count++
			continue
		}

		v, ok, err := extractNumericField(ctx, row, node.fieldExpr)
		if err != nil {
			return "", err
		}

		if !ok {
			continue
		}

		switch node.op {
		case "sum", "avg":
			total += v
			count++
		case "min":
			if minVal == nil || v < *minVal {
				minVal = &v
			}
		case "max":
			if maxVal == nil || v > *maxVal {
				maxVal = &v
			}
		}
	}

	switch node.op {
	case "count":
		return strconv.Itoa(count), nil
	case "sum":
		return renderAggregate(ctx, total), nil
	case "avg":
		if count == 0 {
			return renderAggregate(ctx, 0), nil
		}

		return renderAggregate(ctx, total/float64(count)), nil
	case "min":
		if minVal == nil {
			return renderAggregate(ctx, 0), nil
		}

		return renderAggregate(ctx, *minVal), nil
	case "max":
		if maxVal == nil {
			return renderAggregate(ctx, 0), nil
		}

		return renderAggregate(ctx, *maxVal), nil
	default:
		return "", ctx.Error("unknown aggregate operation "+node.op, nil)
	}
}

// renderAggregate applies the injected amount formatter when the execution
// context carries one, otherwise the plain numeric form.
func renderAggregate(ctx *pongo2.ExecutionContext, v float64) string {
	if fn, ok := ctx.Public[AmountFormatterKey].(func(float64) string); ok {
		return fn(v)
	}

	return formatAggregate(v)
}

// formatAggregate renders whole results without a fractional part.
func formatAggregate(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}

// evaluateRows evaluates the collection expression into a row list.
func evaluateRows(ctx *pongo2.ExecutionContext, expr pongo2.IEvaluator) ([]map[string]any, *pongo2.Error) {
	val, err := expr.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	switch rows := val.Interface().(type) {
	case []map[string]any:
		return rows, nil
	case []any:
		out := make([]map[string]any, 0, len(rows))

		for _, item := range rows {
			if row, ok := item.(map[string]any); ok {
				out = append(out, row)
			}
		}

		return out, nil
	default:
		return nil, ctx.Error("expected a row collection", nil)
	}
}

// passesFilter evaluates the optional "if" expression with the row fields
// exposed as private context variables.
func passesFilter(ctx *pongo2.ExecutionContext, row map[string]any, filterExpr pongo2.IEvaluator) bool {
	if filterExpr == nil {
		return true
	}

	localCtx := pongo2.NewChildExecutionContext(ctx)
	for k, v := range row {
		localCtx.Private[k] = v
	}

	cond, err := filterExpr.Evaluate(localCtx)

	return err == nil && cond.IsTrue()
}

// extractNumericField reads the "by" field from a row, following
// dot-separated paths, and coerces it to float64. Rows without the field
// or with a non-numeric value are skipped, not errors.
func extractNumericField(ctx *pongo2.ExecutionContext, row map[string]any, fieldExpr pongo2.IEvaluator) (float64, bool, *pongo2.Error) {
	fieldNameVal, err := fieldExpr.Evaluate(ctx)
	if err != nil {
		return 0, false, err
	}

	value, ok := getNestedField(row, fieldNameVal.String())
	if !ok {
		return 0, false, nil
	}

	switch v := value.(type) {
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	case string:
		if parsed, perr := strconv.ParseFloat(v, 64); perr == nil {
			return parsed, true, nil
		}
	}

	return 0, false, nil
}
