package customers

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDiscountType = errors.New("invalid discount type")

// DiscountType is the customer's pricing tier.
type DiscountType string

const (
	DiscountNone    DiscountType = "NONE"
	DiscountStaff   DiscountType = "STAFF"
	DiscountStudent DiscountType = "STUDENT"
)

// ParseDiscountType maps a record tag onto a DiscountType. A blank tag
// means no discount.
func ParseDiscountType(tag string) (DiscountType, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "":
		return DiscountNone, nil
	case "NONE":
		return DiscountNone, nil
	case "STAFF":
		return DiscountStaff, nil
	case "STUDENT":
		return DiscountStudent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDiscountType, tag)
	}
}
