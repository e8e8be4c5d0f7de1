package models

// Role is a user's permission level. Authorization decisions go through
// Can rather than comparing role strings at call sites.
type Role string

const (
	RolePlayer Role = "player" // predicts scores, sees own score history
	RoleAdmin  Role = "admin"  // publishes actual scores, sees everything
)

// Operation is an action a request can ask the API to perform.
type Operation int

const (
	OpSubmitPrediction Operation = iota
	OpSetActualScore
	OpViewAllScores
)

var roleOperations = map[Role]map[Operation]bool{
	RolePlayer: {
		OpSubmitPrediction: true,
	},
	RoleAdmin: {
		OpSetActualScore: true,
		OpViewAllScores:  true,
	},
}

// Can reports whether the role is allowed to perform op. Unknown roles are
// allowed nothing.
func (r Role) Can(op Operation) bool {
	return roleOperations[r][op]
}
