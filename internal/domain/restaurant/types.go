package restaurant

type PriceRange string

const (
	PriceRangeBudget   PriceRange = "$"
	PriceRangeModerate PriceRange = "$$"
	PriceRangeUpscale  PriceRange = "$$$"
	PriceRangeLuxury   PriceRange = "$$$$"
)

func (p PriceRange) String() string {
	return string(p)
}

func (p PriceRange) IsValid() bool {
	switch p {
	case PriceRangeBudget, PriceRangeModerate, PriceRangeUpscale, PriceRangeLuxury:
		return true
	default:
		return false
	}
}

func NewPriceRange(s string) (PriceRange, error) {
	if s == "" {
		return PriceRangeModerate, nil
	}
	pr := PriceRange(s)
	if !pr.IsValid() {
		return "", ErrInvalidPriceRange
	}
	return pr, nil
}
