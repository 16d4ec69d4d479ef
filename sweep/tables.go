package sweep

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sensornet/metrics"
	"github.com/katalvlaran/sensornet/routing"
)

// writeTable writes one calculator's sweep results into
// "<outDir>/<slug>.txt": a header naming the range column and each
// builder, then one space-separated row per swept range. It returns the
// written path.
func writeTable(outDir string, kind metrics.Kind, builders []*routing.Builder, rows [][]float64) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("sweep: write table: %w", err)
	}

	path := filepath.Join(outDir, kind.Slug()+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("sweep: write table: %w", err)
	}
	w := bufio.NewWriter(f)

	// Header: the range column, then one column per builder.
	fmt.Fprint(w, "range")
	for _, b := range builders {
		fmt.Fprintf(w, " %s", b.Name())
	}
	fmt.Fprintln(w)

	// Data rows.
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", v)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return "", fmt.Errorf("sweep: write table: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("sweep: write table: close %s: %w", path, err)
	}

	return path, nil
}
