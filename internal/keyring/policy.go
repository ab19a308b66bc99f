package keyring

// TierMode controls how a storage tier is chosen for written values.
type TierMode string

// Tier modes. The zero value behaves as ModeStandardOnly.
const (
	// ModeStandardOnly stores everything in the Standard tier and rejects
	// values that do not fit it.
	ModeStandardOnly TierMode = "standard-only"
	// ModeAdvancedUpgradeable stores values in the smallest tier that fits,
	// upgrading to Advanced only when Standard is too small.
	ModeAdvancedUpgradeable TierMode = "advanced-upgradeable"
	// ModeAdvancedOnly stores everything in the Advanced tier.
	ModeAdvancedOnly TierMode = "advanced-only"
	// ModeIntelligentTiering lets the remote store pick the tier.
	ModeIntelligentTiering TierMode = "intelligent-tiering"
)

// PersistPolicy is the immutable write-side configuration of a repository.
type PersistPolicy struct {
	// KMSKeyID selects the server-side encryption key; empty means the
	// store's default key.
	KMSKeyID string
	// TierMode defaults to ModeStandardOnly.
	TierMode TierMode
	// Tags are attached to every written parameter; an empty map is omitted
	// from write requests entirely.
	Tags map[string]string
}
