package dashboard

// Selection is the set of attendee ids picked for a bulk action.
type Selection map[string]struct{}

// NewSelection builds an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// ToggleOne adds the id when absent and removes it when present.
func (s Selection) ToggleOne(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// ToggleAll clears the selection when every filtered id is already selected;
// otherwise it selects exactly the filtered ids. The filtered set, not the
// full collection, is what toggles.
func (s Selection) ToggleAll(filteredIDs []string) {
	if len(filteredIDs) > 0 && len(s) == len(filteredIDs) {
		for id := range s {
			delete(s, id)
		}
		return
	}
	for id := range s {
		delete(s, id)
	}
	for _, id := range filteredIDs {
		s[id] = struct{}{}
	}
}

// Has reports membership.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in unspecified order.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// DeleteTarget names what a confirmed delete applies to: one record or the
// current selection.
type DeleteTarget struct {
	bulk bool
	ids  []string
}

// SingleTarget targets one attendee record.
func SingleTarget(id string) DeleteTarget {
	return DeleteTarget{ids: []string{id}}
}

// BulkTarget targets the given selection.
func BulkTarget(ids []string) DeleteTarget {
	return DeleteTarget{bulk: true, ids: ids}
}

// Bulk reports whether the target covers a selection.
func (t DeleteTarget) Bulk() bool { return t.bulk }

// IDs returns the targeted attendee ids.
func (t DeleteTarget) IDs() []string { return t.ids }
