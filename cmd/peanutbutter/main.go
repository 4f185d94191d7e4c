package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/anandsun/peanut-butter/internal/mathutil"
)

type Result struct {
	N         int    `json:"n"`
	Range     []int  `json:"range,omitempty"`
	Factorial string `json:"factorial"`
}

func main() {
	var (
		numsArg string
		jsonOut bool
	)

	flag.StringVar(&numsArg, "nums", "0,5,100,150", "Comma-separated inputs to demonstrate")
	flag.BoolVar(&jsonOut, "json", false, "Print a JSON summary instead of human-readable output")
	flag.Parse()

	inputs, err := parseInputs(numsArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -nums: %v\n", err)
		os.Exit(2)
	}

	results := make([]Result, 0, len(inputs))
	for _, n := range inputs {
		res, err := compute(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		results = append(results, res)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)
		return
	}
	printHuman(results)
}

func parseInputs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := mathutil.ParseInt(p)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func compute(n int) (Result, error) {
	res := Result{N: n}
	if n > 0 {
		nums, err := mathutil.Numbers(n)
		if err != nil {
			return Result{}, err
		}
		res.Range = nums
	}
	f, err := mathutil.Factorial(n)
	if err != nil {
		return Result{}, err
	}
	res.Factorial = f.String()
	return res, nil
}

func printHuman(results []Result) {
	sep := strings.Repeat("-", 40)
	for _, r := range results {
		if r.N > 0 {
			fmt.Printf("Numbers up to %d: %v\n", r.N, r.Range)
		}
		fmt.Printf("Factorial of %d: %s\n", r.N, r.Factorial)
		fmt.Println(sep)
	}
}
