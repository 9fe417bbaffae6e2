// SPDX-License-Identifier: MIT

package pipeline

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/boolnet/matrix"
)

// WriteTSV writes m as tab-separated values, one row per line. When labels
// is non-empty its i-th entry prefixes row i.
func WriteTSV(w io.Writer, m *matrix.Dense, labels []string) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		if i < len(labels) {
			bw.WriteString(labels[i])
			if len(row) > 0 {
				bw.WriteByte('\t')
			}
		}
		for j, v := range row {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
