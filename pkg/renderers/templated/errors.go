package templated

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-decor/pkg/slot"
)

const (
	// TextCodeUnknownHeadingLevel tags headings outside levels 1 to 6.
	TextCodeUnknownHeadingLevel = "UNKNOWN_HEADING_LEVEL"
	// TextCodeSlotMissing tags a render reaching an empty slot.
	TextCodeSlotMissing = "TEMPLATE_SLOT_MISSING"
)

func unknownHeadingLevelError(level int) error {
	return goerrors.New(fmt.Sprintf("unknown heading level: %d", level), goerrors.CategoryInternal).
		WithTextCode(TextCodeUnknownHeadingLevel).
		WithMetadata(map[string]any{"level": level})
}

func slotMissingError(s slot.Slot) error {
	return goerrors.New(fmt.Sprintf("template slot %s is empty", s), goerrors.CategoryInternal).
		WithTextCode(TextCodeSlotMissing).
		WithMetadata(map[string]any{"slot": s.String()})
}
