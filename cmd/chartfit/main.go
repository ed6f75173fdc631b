package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/Ssuyk/colour"
	"github.com/Ssuyk/colour/chart"
)

var _ = fmt.Print

// loadSamples reads chart measurements either from an n x 3 CSV file or by
// measuring a chart photograph with the classic 24 patch layout.
func loadSamples(path string) (*mat.Dense, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		if err != nil {
			return nil, err
		}
		ans := mat.NewDense(len(records), 3, nil)
		for i, rec := range records {
			if len(rec) != 3 {
				return nil, fmt.Errorf("%s: row %d has %d fields, expected 3", path, i+1, len(rec))
			}
			for j, field := range rec {
				v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
				if err != nil {
					return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
				}
				ans.Set(i, j, v)
			}
		}
		return ans, nil
	}
	img, err := colour.Open(path)
	if err != nil {
		return nil, err
	}
	return chart.Measure(img, chart.Classic)
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) != 3 && len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: chartfit reference candidate [input-image output-image]")
		fmt.Fprintln(os.Stderr, "reference and candidate are chart photographs or n x 3 CSV measurement files")
		os.Exit(1)
	}
	reference, err := loadSamples(os.Args[1])
	if err != nil {
		return
	}
	candidate, err := loadSamples(os.Args[2])
	if err != nil {
		return
	}
	m, err := colour.FirstOrderFit(reference, candidate)
	if err != nil {
		return
	}
	for _, row := range m {
		fmt.Printf("% .6f % .6f % .6f\n", row[0], row[1], row[2])
	}
	residuals, err := chart.Residuals(reference, candidate, m)
	if err != nil {
		return
	}
	var mean float64
	for _, r := range residuals {
		mean += r
	}
	mean /= float64(len(residuals))
	fmt.Printf("mean residual: %.3f dE76 over %d patches\n", mean, len(residuals))

	if len(os.Args) == 5 {
		img, oerr := colour.Open(os.Args[3])
		if oerr != nil {
			err = oerr
			return
		}
		corrected, cerr := colour.CorrectColors(img, m)
		if cerr != nil {
			err = cerr
			return
		}
		if err = colour.Save(corrected, os.Args[4]); err != nil {
			return
		}
		fmt.Println("corrected image saved to:", os.Args[4])
	}
}
