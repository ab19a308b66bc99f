package keyring

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/keystash/keystash/pkg/proto"
)

// Candidate is one deletable entry under the prefix. Deletion is keyed by
// Name, so entries whose value is not parseable XML are still candidates:
// parse failures shrink the listing result, never the deletion set.
type Candidate struct {
	Name  string // full storage path
	Value string // raw stored value, possibly malformed
}

// OrderFunc assigns a relative deletion order to the full candidate set, one
// rank per candidate in input order. Lower ranks delete first; equal ranks
// keep their natural relative order. The function must be pure; the
// repository sorts internally.
type OrderFunc func(candidates []Candidate) []int

// CanDelete reports whether the injected client supports server-side
// deletion.
func (r *Repository) CanDelete() bool {
	_, ok := r.client.(Deleter)
	return ok
}

// DeleteAll removes every entry under the prefix, strictly sequentially, in
// the order assigned by orderFn (natural page order when nil). The first
// failing delete stops the batch immediately: already-deleted entries stay
// deleted and the call resolves to false rather than an error, since a
// refused delete is an expected operational outcome. The error return is
// reserved for enumeration failures and for clients without the Deleter
// capability.
func (r *Repository) DeleteAll(ctx context.Context, orderFn OrderFunc) (bool, error) {
	deleter, ok := r.client.(Deleter)
	if !ok {
		return false, ErrDeleteUnsupported
	}

	var candidates []Candidate
	err := r.listPages(ctx, func(e proto.Entry) {
		candidates = append(candidates, Candidate{Name: e.Name, Value: e.Value})
	})
	if err != nil {
		return false, err
	}

	if orderFn != nil {
		candidates = applyOrder(candidates, orderFn)
	}

	for _, c := range candidates {
		if err := deleter.Delete(ctx, c.Name); err != nil {
			if r.metrics != nil {
				r.metrics.DeleteFailures.Inc()
			}
			log.Error().Err(err).Str("path", c.Name).Msg("parameter delete failed, aborting batch")
			return false, nil
		}
		if r.metrics != nil {
			r.metrics.Deletes.Inc()
		}
	}
	return true, nil
}

// applyOrder stable-sorts candidates by the ranks orderFn assigns. The hook
// receives a copy so it cannot alias the slice being sorted. A rank slice of
// the wrong length is ignored in favor of natural order.
func applyOrder(candidates []Candidate, orderFn OrderFunc) []Candidate {
	view := make([]Candidate, len(candidates))
	copy(view, candidates)
	ranks := orderFn(view)
	if len(ranks) != len(candidates) {
		log.Warn().
			Int("candidates", len(candidates)).
			Int("ranks", len(ranks)).
			Msg("ordering hook returned wrong rank count, keeping natural order")
		return candidates
	}

	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ranks[idx[a]] < ranks[idx[b]]
	})

	ordered := make([]Candidate, len(candidates))
	for i, j := range idx {
		ordered[i] = candidates[j]
	}
	return ordered
}
