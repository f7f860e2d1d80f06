package binding

import "fmt"

// Profile selects the subset of operations a Registry exposes.
type Profile int

const (
	// ProfileFull exposes every operation, the in-place variants, the
	// relational comparisons and the operator aliases.
	ProfileFull Profile = iota

	// ProfileBasic exposes allocation, point and range mutation, count,
	// the constructive intersection and union, and the debug dumps.
	// It has no operator aliases.
	ProfileBasic
)

func (p Profile) String() string {
	switch p {
	case ProfileFull:
		return "full"
	case ProfileBasic:
		return "basic"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// ParseProfile parses "full" or "basic".
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "full":
		return ProfileFull, nil
	case "basic":
		return ProfileBasic, nil
	default:
		return 0, fmt.Errorf("unknown profile %q (want full or basic)", s)
	}
}
