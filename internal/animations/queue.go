package animations

// Queue accepts job ids for the dispatcher. Enqueue never blocks; it fails
// when the queue is full and the caller decides whether to retry.
type Queue interface {
	Enqueue(jobID string) error
}
