package keyring

import "github.com/keystash/keystash/pkg/proto"

// Tier is a remote-store storage class.
type Tier string

// Storage tiers, matching the wire values the store accepts.
const (
	TierStandard           Tier = proto.TierStandard
	TierAdvanced           Tier = proto.TierAdvanced
	TierIntelligentTiering Tier = proto.TierIntelligentTiering
)

// Tier size ceilings in bytes of serialized value, as enforced by the remote
// store itself.
const (
	StandardMaxSize = proto.MaxStandardValueSize
	AdvancedMaxSize = proto.MaxAdvancedValueSize
)

// SelectTier chooses the smallest tier that fits valueLength unless the
// policy forces a higher one. It never issues a network call; values that
// cannot fit the effective ceiling fail here, before any write is attempted.
func SelectTier(valueLength int, policy PersistPolicy) (Tier, error) {
	if valueLength > AdvancedMaxSize {
		return "", &ParameterTooLargeError{Length: valueLength, Limit: AdvancedMaxSize, Mode: policy.TierMode}
	}
	switch policy.TierMode {
	case ModeAdvancedOnly:
		return TierAdvanced, nil
	case ModeIntelligentTiering:
		return TierIntelligentTiering, nil
	}
	if valueLength > StandardMaxSize {
		if policy.TierMode == ModeAdvancedUpgradeable {
			return TierAdvanced, nil
		}
		return "", &ParameterTooLargeError{Length: valueLength, Limit: StandardMaxSize, Mode: policy.TierMode}
	}
	return TierStandard, nil
}
