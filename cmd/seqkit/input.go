package main

import (
	"bufio"
	"io"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/pkg/seqkit/queueseq"
)

// readItems reads newline separated items, and reports the number of bytes consumed.
func readItems(r io.Reader) ([]string, int, error) {
	var (
		items []string
		size  int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		size += len(line) + 1
		items = append(items, line)
	}
	return items, size, scanner.Err()
}

// toSequence holds the items in the container kind picked by the configuration.
func toSequence(items []string, kind string) (seqkit.Sequence[string], error) {
	if kind == string(queueseq.Kind) {
		return queueseq.New(items...), nil
	}
	k, err := seqkit.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return seqkit.Into(items, k)
}
