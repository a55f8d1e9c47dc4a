package aggregate

import "bytes"

// CountLines counts records by counting terminators across n goroutines,
// independently of the chunk parser. A final line without '\n' counts too.
func CountLines(data []byte, n int) int {
	parts := Partition(data, n)
	counts := make(chan int, len(parts))
	for _, part := range parts {
		go func(part []byte) {
			counts <- bytes.Count(part, []byte{'\n'})
		}(part)
	}
	var total int
	for range parts {
		total += <-counts
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		total++
	}
	return total
}
