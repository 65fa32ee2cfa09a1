// Package xref owns the cross-record bookkeeping of one conversion run:
// surrogate-id assignment for deduplicated entities and resolution of raw
// classification codes against reference lookups. All state is per-run;
// construct fresh values for each input file.
package xref

// Assigner hands out surrogate ids for canonical identities. Ids start at 1
// and grow monotonically; the same identity always gets the same id within
// one run.
type Assigner struct {
	ids  map[string]int
	next int
}

// NewAssigner creates an empty Assigner.
func NewAssigner() *Assigner {
	return &Assigner{ids: make(map[string]int), next: 1}
}

// Assign returns the id for key. fresh reports whether the id was newly
// assigned, which is the caller's cue to emit the entity's definition.
func (a *Assigner) Assign(key string) (id int, fresh bool) {
	if id, ok := a.ids[key]; ok {
		return id, false
	}
	id = a.next
	a.next++
	a.ids[key] = id
	return id, true
}

// Len returns the number of distinct identities seen so far.
func (a *Assigner) Len() int {
	return len(a.ids)
}

// CodePair is one raw (book, classification code) attachment, kept in
// accumulation order.
type CodePair struct {
	BookID int
	Code   string
}

// Link is a resolved (book, reference id) pair.
type Link struct {
	BookID int
	RefID  int
}

// ResolveCodes matches raw code pairs against a code→id lookup. Matched
// links keep accumulation order; codes absent from the lookup are counted,
// never fatal.
func ResolveCodes(pairs []CodePair, lookup map[string]int) (links []Link, skipped int) {
	for _, p := range pairs {
		id, ok := lookup[p.Code]
		if !ok {
			skipped++
			continue
		}
		links = append(links, Link{BookID: p.BookID, RefID: id})
	}
	return links, skipped
}
