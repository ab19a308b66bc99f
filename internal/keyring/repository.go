// Package keyring persists key XML documents into a remote hierarchical
// parameter store under a configured path prefix.
package keyring

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/keystash/keystash/internal/metrics"
	"github.com/keystash/keystash/pkg/proto"
)

// Client is the remote parameter store surface the repository consumes.
// Implementations do their own timeouts; the repository never retries.
type Client interface {
	// ListPage fetches one page of entries under prefix. An empty
	// continuationToken requests the first page.
	ListPage(ctx context.Context, prefix string, decrypt bool, continuationToken string) (*proto.ListPageResponse, error)
	// Write creates or overwrites a single parameter.
	Write(ctx context.Context, req *proto.WriteRequest) error
}

// Deleter is the optional deletion capability of a remote store. Store
// revisions without server-side deletion simply do not implement it.
type Deleter interface {
	Delete(ctx context.Context, name string) error
}

// Repository stores, lists and deletes key elements under one path prefix.
// Configuration is fixed at construction; the only shared state across
// operations is the client handle, so concurrent use is safe as far as this
// layer is concerned; the remote store arbitrates concurrent writers.
type Repository struct {
	prefix  string
	policy  PersistPolicy
	client  Client
	metrics *metrics.RepoMetrics // optional
}

// New creates a repository rooted at prefix. The prefix is normalized to
// exactly one leading and one trailing '/'. Metrics may be nil.
func New(prefix string, policy PersistPolicy, client Client, m *metrics.RepoMetrics) (*Repository, error) {
	normalized, err := NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	return &Repository{
		prefix:  normalized,
		policy:  policy,
		client:  client,
		metrics: m,
	}, nil
}

// Prefix returns the normalized path prefix.
func (r *Repository) Prefix() string {
	return r.prefix
}

// Store writes one element to the remote store. The element name is resolved
// once: explicitName wins, then the element's id attribute, then a freshly
// generated UUID. Tier selection runs before the network call, so an
// oversized value never reaches the store. Exactly one write is issued and
// remote failures are returned unchanged after logging.
func (r *Repository) Store(ctx context.Context, el Element, explicitName string) error {
	name := explicitName
	if name == "" {
		name = el.ID
	}
	if name == "" {
		name = uuid.NewString()
	}
	path := r.prefix + name

	tier, err := SelectTier(len(el.Raw), r.policy)
	if err != nil {
		return err
	}

	req := &proto.WriteRequest{
		Name:  path,
		Value: string(el.Raw),
		Tier:  string(tier),
		Type:  proto.TypeEncryptedString,
	}
	if len(r.policy.Tags) > 0 {
		req.Tags = r.policy.Tags
	}
	if r.policy.KMSKeyID != "" {
		req.KMSKeyID = r.policy.KMSKeyID
	}

	if err := r.client.Write(ctx, req); err != nil {
		if r.metrics != nil {
			r.metrics.WriteErrors.Inc()
		}
		log.Error().Err(err).Str("path", path).Msg("parameter write failed")
		return err
	}
	if r.metrics != nil {
		r.metrics.Writes.Inc()
	}
	log.Debug().Str("path", path).Str("tier", string(tier)).Msg("stored key element")
	return nil
}

// ListAll returns every parseable element under the prefix, concatenated in
// the store's page-return order. Entries whose value is not well-formed XML
// are logged and dropped; a failed page request aborts the whole listing.
func (r *Repository) ListAll(ctx context.Context) ([]Element, error) {
	var elements []Element
	err := r.listPages(ctx, func(e proto.Entry) {
		el, perr := ParseElement([]byte(e.Value))
		if perr != nil {
			if r.metrics != nil {
				r.metrics.EntriesSkipped.Inc()
			}
			log.Warn().Err(perr).Str("path", e.Name).Msg("skipping unparseable parameter value")
			return
		}
		elements = append(elements, el)
	})
	if err != nil {
		return nil, err
	}
	return elements, nil
}

// listPages walks the full prefix subtree, invoking fn for every returned
// entry in page order. Pages are fetched strictly sequentially, chasing
// continuation tokens until the store returns an empty one. No client-side
// page cap exists; termination relies on the store's token protocol being
// finite.
func (r *Repository) listPages(ctx context.Context, fn func(proto.Entry)) error {
	token := ""
	for {
		page, err := r.client.ListPage(ctx, r.prefix, true, token)
		if err != nil {
			log.Error().Err(err).Str("prefix", r.prefix).Msg("parameter listing failed")
			return err
		}
		if r.metrics != nil {
			r.metrics.ListPages.Inc()
		}
		for _, e := range page.Entries {
			fn(e)
		}
		if page.NextContinuationToken == "" {
			return nil
		}
		token = page.NextContinuationToken
	}
}
