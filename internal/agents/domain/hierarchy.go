// Package domain holds the agent rank hierarchy. The hierarchy is a fixed
// total order: an agent may only supervise agents of strictly lower rank.
package domain

// AgentType is a staff rank in the practice hierarchy.
type AgentType string

// Ranks from highest to lowest. The order of this list is the hierarchy:
// each type may supervise every type that appears after it.
const (
	Owner            AgentType = "Owner"
	Partner          AgentType = "Partner"
	CEO              AgentType = "CEO"
	ManagingDirector AgentType = "Managing Director"
	SeniorAdvocate   AgentType = "Senior Advocate"
	Advocate         AgentType = "Advocate"
	Paralegal        AgentType = "Paralegal"
	Intern           AgentType = "Intern"
)

var ranked = []AgentType{
	Owner,
	Partner,
	CEO,
	ManagingDirector,
	SeniorAdvocate,
	Advocate,
	Paralegal,
	Intern,
}

// AllTypes returns the full rank list, highest first.
func AllTypes() []AgentType {
	out := make([]AgentType, len(ranked))
	copy(out, ranked)
	return out
}

// IsValidType reports whether t is a known agent type.
func IsValidType(t AgentType) bool {
	_, ok := rankOf(t)
	return ok
}

func rankOf(t AgentType) (int, bool) {
	for i, r := range ranked {
		if r == t {
			return i, true
		}
	}
	return 0, false
}

// EligibleSubordinates returns the agent types that may report to a superior
// of type t: every type strictly below t in the hierarchy. Intern, the lowest
// rank, yields an empty set. Unknown types also yield an empty set.
func EligibleSubordinates(t AgentType) []AgentType {
	idx, ok := rankOf(t)
	if !ok {
		return []AgentType{}
	}
	out := make([]AgentType, 0, len(ranked)-idx-1)
	out = append(out, ranked[idx+1:]...)
	return out
}

// CanSupervise reports whether an agent of type superior may supervise an
// agent of type subordinate: the superior's rank must be strictly higher.
func CanSupervise(superior, subordinate AgentType) bool {
	supIdx, ok := rankOf(superior)
	if !ok {
		return false
	}
	subIdx, ok := rankOf(subordinate)
	if !ok {
		return false
	}
	return supIdx < subIdx
}

// RoleFor maps an agent type to its access role: the two top ranks
// administer the practice, everyone else is a regular agent.
func RoleFor(t AgentType) string {
	if t == Owner || t == Partner {
		return "admin"
	}
	return "agent"
}
