package model

import "strings"

// Bucket is the canonical lifecycle stage a free-text status maps onto.
type Bucket int

const (
	// BucketEarliest holds backlog/planning items and anything unrecognized.
	BucketEarliest Bucket = iota
	BucketActive
	BucketDone
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{BucketEarliest, BucketActive, BucketDone}

// String returns the string representation of the bucket.
func (b Bucket) String() string {
	switch b {
	case BucketActive:
		return "active"
	case BucketDone:
		return "done"
	default:
		return "earliest"
	}
}

// MarshalText lets buckets serve as JSON and YAML map keys.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// StatusTable is the alias policy for one entity type. Lookups are
// case-insensitive and total: unknown statuses fall into BucketEarliest.
type StatusTable struct {
	Entity  string
	Labels  map[Bucket]string
	aliases map[string]Bucket
}

func newStatusTable(entity string, labels map[Bucket]string, active, done []string) StatusTable {
	aliases := make(map[string]Bucket, len(active)+len(done))
	for _, s := range active {
		aliases[s] = BucketActive
	}
	for _, s := range done {
		aliases[s] = BucketDone
	}
	return StatusTable{Entity: entity, Labels: labels, aliases: aliases}
}

// Classify maps status onto a bucket.
func (t StatusTable) Classify(status string) Bucket {
	if b, ok := t.aliases[strings.ToLower(strings.TrimSpace(status))]; ok {
		return b
	}
	return BucketEarliest
}

// Label returns the human-readable name of b for this entity type.
func (t StatusTable) Label(b Bucket) string {
	if l, ok := t.Labels[b]; ok {
		return l
	}
	return b.String()
}

// PrdStatuses: backlog, draft and unset statuses need no entry; they fall
// through to BucketEarliest with everything else unrecognized.
var PrdStatuses = newStatusTable("prd",
	map[Bucket]string{BucketEarliest: "Backlog", BucketActive: "In Progress", BucketDone: "Implemented"},
	[]string{"in-progress", "in_progress", "active"},
	[]string{"implemented", "completed", "complete", "done", "finished"},
)

// EpicStatuses: planning, draft and unset fall through to BucketEarliest.
var EpicStatuses = newStatusTable("epic",
	map[Bucket]string{BucketEarliest: "Planning", BucketActive: "In Progress", BucketDone: "Completed"},
	[]string{"in-progress", "in_progress", "active", "started"},
	[]string{"completed", "complete", "done", "closed", "finished"},
)

// ClassifyPrd maps a PRD status onto its bucket.
func ClassifyPrd(status string) Bucket { return PrdStatuses.Classify(status) }

// ClassifyEpic maps an epic status onto its bucket.
func ClassifyEpic(status string) Bucket { return EpicStatuses.Classify(status) }

// GroupByStatus partitions items by bucket, preserving input order within
// each bucket. Every bucket key is present in the result, even when empty.
func GroupByStatus[T any](items []T, status func(T) string, table StatusTable) map[Bucket][]T {
	grouped := make(map[Bucket][]T, len(Buckets))
	for _, b := range Buckets {
		grouped[b] = []T{}
	}
	for _, item := range items {
		b := table.Classify(status(item))
		grouped[b] = append(grouped[b], item)
	}
	return grouped
}

// GroupPrds groups PRDs with the PRD alias table.
func GroupPrds(prds []Prd) map[Bucket][]Prd {
	return GroupByStatus(prds, func(p Prd) string { return p.Status }, PrdStatuses)
}

// GroupEpics groups epics with the epic alias table.
func GroupEpics(epics []Epic) map[Bucket][]Epic {
	return GroupByStatus(epics, func(e Epic) string { return e.Status }, EpicStatuses)
}
