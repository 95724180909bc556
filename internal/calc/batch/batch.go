package batch

import (
	"fmt"

	mullion "Mullion/internal/calc/mullion"
)

type Input struct {
	Items []mullion.Input `json:"items"`
}

type Result struct {
	Results []mullion.Result `json:"results"`
}

// Calculate runs a set of design checks in order, failing on the first
// invalid item.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]mullion.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := mullion.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
