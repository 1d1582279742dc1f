package word

import "strings"

// FormatMatrix renders the first cols columns of each row, highest column
// first, one row per line. Intended for test failure messages.
func FormatMatrix(a uint64, rows, cols, stride int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		row := GetField(i, stride, a)
		for j := cols - 1; j >= 0; j-- {
			sb.WriteByte('0' + byte((row>>j)&1))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatDontCares renders a BRANCH/FREE matrix pair, printing '*' where the
// free bit is set and the branch bit otherwise.
func FormatDontCares(branch, free uint64, rows, cols, stride int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		b := GetField(i, stride, branch)
		f := GetField(i, stride, free)
		for j := cols - 1; j >= 0; j-- {
			switch {
			case (f>>j)&1 == 1:
				sb.WriteByte('*')
			default:
				sb.WriteByte('0' + byte((b>>j)&1))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
