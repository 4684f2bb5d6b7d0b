package crawl

// Queue collects candidate page URLs with deduplication, so a page
// linked from several places is planned once. Order of insertion is
// preserved.
type Queue struct {
	items   []string
	visited map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a URL. It returns false if the URL was already seen.
func (q *Queue) Add(url string) bool {
	if q.visited[url] {
		return false
	}
	q.visited[url] = true
	q.items = append(q.items, url)
	return true
}

// Exclude marks a URL as seen without enqueueing it. Used for the page
// the links came from, which is already being processed.
func (q *Queue) Exclude(url string) {
	q.visited[url] = true
}

// Len returns the number of queued URLs.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns every queued URL in insertion order.
func (q *Queue) All() []string {
	return q.items
}
