package booking

import "venuely/models"

// HasConflict reports whether the candidate slot overlaps any existing slot
// on the same venue and date. Pure and order-independent; existing may be an
// unscoped list, entries for other venues or dates are ignored.
func HasConflict(candidate models.TimeSlot, existing []models.TimeSlot) bool {
	for _, slot := range existing {
		if candidate.Overlaps(slot) {
			return true
		}
	}
	return false
}

// ConflictingSlots returns every existing slot that overlaps the candidate,
// preserving input order.
func ConflictingSlots(candidate models.TimeSlot, existing []models.TimeSlot) []models.TimeSlot {
	var conflicts []models.TimeSlot
	for _, slot := range existing {
		if candidate.Overlaps(slot) {
			conflicts = append(conflicts, slot)
		}
	}
	return conflicts
}
