package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the phase progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest the progress bar gets.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for task titles.
	TargetTitleWidth = 48

	// MinTitleWidth is the minimum width for task titles.
	MinTitleWidth = 10
)

// Display limits.
const (
	// MaxVisibleTasks limits tasks shown before scrolling.
	MaxVisibleTasks = 12

	// MaxVisibleCompleted limits the completed list.
	MaxVisibleCompleted = 6

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 100

	// MaxMinutesInputLength bounds the numeric inputs.
	MaxMinutesInputLength = 3
)
