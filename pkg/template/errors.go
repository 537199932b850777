package template

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-decor/pkg/slot"
)

// TextCodeMissingElements tags errors for templates lacking required slots.
const TextCodeMissingElements = "TEMPLATE_MISSING_ELEMENTS"

const missingMetadataKey = "missing"

func missingElementsError(missing []slot.Slot) error {
	names := slot.Names(missing)
	return goerrors.New("missing elements in template: "+strings.Join(names, ","), goerrors.CategoryValidation).
		WithTextCode(TextCodeMissingElements).
		WithMetadata(map[string]any{missingMetadataKey: names})
}

// MissingSlots returns the slot names reported by a missing elements error, or
// nil for any other error.
func MissingSlots(err error) []string {
	var e *goerrors.Error
	if !goerrors.As(err, &e) || e.TextCode != TextCodeMissingElements {
		return nil
	}
	names, _ := e.Metadata[missingMetadataKey].([]string)
	return names
}

// IsMissingElements reports whether err describes an incomplete template.
func IsMissingElements(err error) bool {
	return MissingSlots(err) != nil
}
