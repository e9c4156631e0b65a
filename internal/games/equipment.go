package games

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidEquipmentType = errors.New("invalid equipment type")

// EquipmentType is the VR rig a VirtualReality game requires.
type EquipmentType string

const (
	EquipmentHeadsetOnly           EquipmentType = "HEADSET_ONLY"
	EquipmentHeadsetAndControllers EquipmentType = "HEADSET_AND_CONTROLLERS"
	EquipmentFullBodyTracking      EquipmentType = "FULL_BODY_TRACKING"
)

// ParseEquipmentType maps a record token onto an EquipmentType. Tokens may
// arrive in camel case ("HeadsetOnly") or already in the canonical
// underscore form; both normalize to the same constant.
func ParseEquipmentType(token string) (EquipmentType, error) {
	switch EquipmentType(normalizeEquipmentToken(strings.TrimSpace(token))) {
	case EquipmentHeadsetOnly:
		return EquipmentHeadsetOnly, nil
	case EquipmentHeadsetAndControllers:
		return EquipmentHeadsetAndControllers, nil
	case EquipmentFullBodyTracking:
		return EquipmentFullBodyTracking, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEquipmentType, token)
	}
}

// normalizeEquipmentToken inserts an underscore before each internal
// uppercase letter that starts a new word, then upper-cases the result.
// A rune already preceded by an uppercase letter or an underscore starts no
// new word, so canonical tokens pass through unchanged.
func normalizeEquipmentToken(token string) string {
	var b strings.Builder

	var prev rune

	for i, r := range token {
		if i > 0 && unicode.IsUpper(r) && prev != '_' && !unicode.IsUpper(prev) {
			b.WriteByte('_')
		}

		b.WriteRune(r)
		prev = r
	}

	return strings.ToUpper(b.String())
}
