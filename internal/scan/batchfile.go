package scan

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const commentMarker = "#"

// ReadBatchList parses a batch file: one input path per line, in file order.
// Blank lines and lines starting with # are skipped.
func ReadBatchList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return paths, nil
}
