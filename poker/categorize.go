package poker

// Tier is a coarse preflop strength bucket for a starting hand.
type Tier string

const (
	TierPremium Tier = "Premium"
	TierStrong  Tier = "Strong"
	TierMedium  Tier = "Medium"
	TierWeak    Tier = "Weak"
	TierTrash   Tier = "Trash"
	TierUnknown Tier = "Unknown"
)

// Tier buckets the class:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited hands at most two ranks apart), Trash (everything else).
func (p PocketClass) Tier() Tier {
	if !p.Valid() {
		return TierUnknown
	}
	hi, lo := p.Ranks()
	pair := p.IsPair()
	suited := p.IsSuited()

	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return TierPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return TierStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return TierMedium
	case pair, suited && hi-lo <= 2:
		return TierWeak
	default:
		return TierTrash
	}
}

// TierOf buckets a two card hand; anything else is TierUnknown.
func TierOf(h Hand) Tier {
	return PocketClassOf(h).Tier()
}
