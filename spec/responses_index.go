package spec

import "sort"

// ResponseIndex presents a per-status-code response collection as a flat
// associative lookup, regardless of whether the collection is reached
// through an Operation or held directly as a Responses value. Semantics are
// identical for both backings: Get is an optional-value lookup, Set is
// last-write-wins on the key, Delete removes the key. Status codes are
// opaque; no numeric range is enforced at this layer.
//
// The index is a view, not a copy: Set and Delete edit the backing
// collection in place. Callers relying on the value-replacement contract
// take a DeepCopy of the owner first and index the copy.
type ResponseIndex struct {
	owner responsesOwner
}

// responsesOwner abstracts the two places a status-code map can live.
type responsesOwner interface {
	// responses returns the backing collection, or nil when absent.
	responses() *Responses
	// ensureResponses returns the backing collection, allocating it first
	// when absent.
	ensureResponses() *Responses
}

func (r *Responses) responses() *Responses       { return r }
func (r *Responses) ensureResponses() *Responses { return r }

// Index returns a flat status-code view over this collection.
func (r *Responses) Index() ResponseIndex {
	return ResponseIndex{owner: r}
}

func (op *Operation) responses() *Responses { return op.Responses }

func (op *Operation) ensureResponses() *Responses {
	if op.Responses == nil {
		op.Responses = &Responses{}
	}
	return op.Responses
}

// Index returns a flat status-code view over this operation's response
// collection. The collection is allocated on the first Set.
func (op *Operation) Index() ResponseIndex {
	return ResponseIndex{owner: op}
}

// Get looks up the response registered for code.
func (ix ResponseIndex) Get(code StatusCode) (*OrRef[Response], bool) {
	r := ix.owner.responses()
	if r == nil || r.Codes == nil {
		return nil, false
	}
	v, ok := r.Codes[code]
	return v, ok
}

// Set registers v under code, replacing any previous registration.
func (ix ResponseIndex) Set(code StatusCode, v *OrRef[Response]) {
	r := ix.owner.ensureResponses()
	if r.Codes == nil {
		r.Codes = make(map[StatusCode]*OrRef[Response])
	}
	r.Codes[code] = v
}

// Delete removes the registration for code. Deleting an absent code is a
// no-op.
func (ix ResponseIndex) Delete(code StatusCode) {
	r := ix.owner.responses()
	if r == nil || r.Codes == nil {
		return
	}
	delete(r.Codes, code)
}

// Len returns the number of registered status codes.
func (ix ResponseIndex) Len() int {
	r := ix.owner.responses()
	if r == nil {
		return 0
	}
	return len(r.Codes)
}

// Codes returns the registered status codes in sorted order.
func (ix ResponseIndex) Codes() []StatusCode {
	r := ix.owner.responses()
	if r == nil || len(r.Codes) == 0 {
		return nil
	}
	codes := make([]StatusCode, 0, len(r.Codes))
	for code := range r.Codes {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
