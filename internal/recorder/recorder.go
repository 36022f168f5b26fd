package recorder

import "GradeBook/internal/model"

// Snapshot holds one statistics computation for a book.
type Snapshot struct {
	BookName   string
	GradeCount int
	Stats      model.Statistics
}

// Recorder receives computed statistics snapshots.
type Recorder interface {
	RecordStatistics(snap *Snapshot) error
	Close() error
}
