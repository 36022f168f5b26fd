package recorder

// NoopRecorder discards every snapshot.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordStatistics(_ *Snapshot) error { return nil }
func (n *NoopRecorder) Close() error                       { return nil }
