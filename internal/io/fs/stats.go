package fs

import "fmt"

// Stats counts what a run has processed.
type Stats struct {
	Files        int
	SkippedFiles int
	Lines        uint64
	SkippedLines uint64
	Matches      uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("files:%d skippedFiles:%d lines:%d skippedLines:%d matches:%d",
		s.Files, s.SkippedFiles, s.Lines, s.SkippedLines, s.Matches)
}

func (s *Stats) updateLineRead()    { s.Lines++ }
func (s *Stats) updateLineSkipped() { s.SkippedLines++ }
func (s *Stats) updateLineMatched() { s.Matches++ }
