package domain

// Durability is a hint to the incremental engine about how often an input is expected to change.
// Values computed only from high-durability inputs skip revalidation when low-durability inputs change.
type Durability uint8

const (
	// DurabilityLow is for inputs that change frequently, such as files on disk.
	DurabilityLow Durability = iota
	// DurabilityMedium is for inputs that change occasionally.
	DurabilityMedium
	// DurabilityHigh is for inputs that practically never change, such as bundled sources.
	DurabilityHigh
)

// DurabilityCount is the number of durability levels.
const DurabilityCount = int(DurabilityHigh) + 1

// String returns the string representation of the Durability.
func (d Durability) String() string {
	switch d {
	case DurabilityLow:
		return "low"
	case DurabilityMedium:
		return "medium"
	case DurabilityHigh:
		return "high"
	default:
		return "unknown"
	}
}
