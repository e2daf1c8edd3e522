package mapf

import "errors"

// Sentinel errors for mapf construction and validation.
var (
	// ErrDuplicateAgent indicates two agents in an Instance share a name.
	ErrDuplicateAgent = errors.New("mapf: duplicate agent name")
	// ErrEmptyDimensions indicates a Map with zero width or height.
	ErrEmptyDimensions = errors.New("mapf: map dimensions must be positive")
	// ErrMissingSchedule indicates a Solution whose schedule omits an agent
	// present in the Instance.
	ErrMissingSchedule = errors.New("mapf: solution schedule missing agent")
	// ErrEmptyAnnouncements indicates an Announcements value with no agents.
	ErrEmptyAnnouncements = errors.New("mapf: announcements schedule has no agents")
)
