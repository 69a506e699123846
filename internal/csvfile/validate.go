package csvfile

// IsValid is a cheap structural sanity check run before a full parse,
// so callers can reject binary or truncated files up front. A file
// passes when its first kilobyte is mostly printable, the first 4KB
// parse into at least a header and one data row with two or more
// columns, and every data row's field count stays within one of the
// header's (a single trailing or missing delimiter is tolerated).
func IsValid(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	control := 0
	for _, b := range probe {
		if b < 0x20 && b != '\t' && b != '\r' && b != '\n' {
			control++
		}
	}
	if control*3 > len(probe) {
		return false
	}

	head := data
	if len(head) > 4096 {
		head = head[:4096]
	}
	table := Parse(head)
	if table.RowCount() < 2 {
		return false
	}
	if table.ColumnCount() < 2 {
		return false
	}

	want := table.ColumnCount()
	for _, row := range table.DataRows() {
		diff := len(row) - want
		if diff < -1 || diff > 1 {
			return false
		}
	}
	return true
}
