package pongo

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/flosch/pongo2/v6"
)

// numeric coerces a template value into a float64. Strings are parsed,
// everything else is rejected.
func numeric(v *pongo2.Value) (float64, error) {
	switch t := v.Interface().(type) {
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %q as number: %w", t, err)
		}

		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", t)
	}
}

// scaleFilter divides a numeric value by 10^param and formats it with
// param decimal places. Used for minor-unit amounts stored as integers.
func scaleFilter(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	value, err := numeric(in)
	if err != nil {
		return pongo2.AsSafeValue("NaN"), &pongo2.Error{Sender: "scaleFilter", OrigError: err}
	}

	scale := param.Integer()
	scaled := value / math.Pow10(scale)

	return pongo2.AsValue(fmt.Sprintf("%.*f", scale, scaled)), nil
}

// percentOfFilter renders the percentage of in relative to param with two
// decimal places. A zero denominator yields NaN.
func percentOfFilter(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	num, errNum := numeric(in)
	den, errDen := numeric(param)

	if errNum != nil || errDen != nil || den == 0 {
		return pongo2.AsSafeValue("NaN"), &pongo2.Error{
			Sender:    "percentOfFilter",
			OrigError: errors.New("invalid input or denominator is zero"),
		}
	}

	return pongo2.AsValue(fmt.Sprintf("%.2f%%", num/den*100)), nil
}

// progressFilter renders in as an integer progress percentage toward
// param, clamped to [0, 100]. Used for workflow completion bars.
func progressFilter(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	current, errCur := numeric(in)
	target, errTgt := numeric(param)

	if errCur != nil || errTgt != nil || target == 0 {
		return pongo2.AsSafeValue("0"), &pongo2.Error{
			Sender:    "progressFilter",
			OrigError: errors.New("invalid input or target is zero"),
		}
	}

	percent := math.Max(0, math.Min(100, current/target*100))

	return pongo2.AsValue(strconv.Itoa(int(math.Round(percent)))), nil
}
