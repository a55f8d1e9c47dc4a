package aggregate

import "bytes"

// Partition splits data into exactly n contiguous, non-overlapping slices
// that together cover it. Every slice but the last ends right after a '\n',
// so no line straddles two slices. Each boundary starts at the naive
// len(data)/n multiple and grows forward to the next terminator; when data
// holds fewer lines than n, some slices come back empty.
func Partition(data []byte, n int) [][]byte {
	if n < 1 {
		n = 1
	}
	chunks := make([][]byte, n)
	size := len(data) / n
	var start int
	for i := range chunks {
		end := (i + 1) * size
		switch {
		case i == n-1:
			end = len(data)
		case end <= start:
			// The previous boundary already grew past this one.
			end = start
		default:
			// Searching from end-1 keeps a boundary that already sits just
			// after a '\n' in place.
			if j := bytes.IndexByte(data[end-1:], '\n'); j < 0 {
				end = len(data)
			} else {
				end += j
			}
		}
		chunks[i] = data[start:end]
		start = end
	}
	return chunks
}
