package constant

// Vertical motion tuning (world units)
const (
	// Gravity is the fall acceleration in world units per second squared, tuned for screen scale
	Gravity = 800.0

	// Restitution is the fraction of speed kept after a floor contact
	Restitution = 0.8
)

// Motion stepping and settle thresholds
const (
	// MotionStepSize caps a single displacement step so bounds are checked at this granularity
	MotionStepSize = 5.0

	// SettleDistance is the per-frame displacement under which vertical motion may come to rest
	SettleDistance = 0.5

	// SettlePosition is the height under which vertical motion may come to rest
	SettlePosition = 0.5
)
