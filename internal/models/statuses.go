package models

type UserRole string
type UserStatus string
type Relationship string
type LeadStatus string
type AssignmentStatus string

const (
	UserRoleParent   UserRole = "parent"
	UserRoleDaughter UserRole = "daughter"
	UserRoleVendor   UserRole = "vendor"

	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"

	RelationshipDaughter      Relationship = "daughter"
	RelationshipSon           Relationship = "son"
	RelationshipDaughterInLaw Relationship = "daughter-in-law"
	RelationshipSonInLaw      Relationship = "son-in-law"
	RelationshipOther         Relationship = "other"

	LeadStatusPending   LeadStatus = "pending"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusApproved  LeadStatus = "approved"
	LeadStatusRejected  LeadStatus = "rejected"

	// Capitalized values kept for wire compatibility with existing
	// dashboard clients.
	AssignmentStatusActive AssignmentStatus = "Active"
	AssignmentStatusAssign AssignmentStatus = "Assign"
	AssignmentStatusClose  AssignmentStatus = "Close"
)

// ValidRole reports whether r is one of the three registration roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleParent, UserRoleDaughter, UserRoleVendor:
		return true
	}
	return false
}

// ValidUserStatus reports whether s is a known account status.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}

// ValidRelationship reports whether r is one of the enumerated values.
func ValidRelationship(r Relationship) bool {
	switch r {
	case RelationshipDaughter, RelationshipSon, RelationshipDaughterInLaw,
		RelationshipSonInLaw, RelationshipOther:
		return true
	}
	return false
}

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusApproved, LeadStatusRejected:
		return true
	}
	return false
}

// ValidAssignmentStatus reports whether s is a known service assignment
// status.
func ValidAssignmentStatus(s AssignmentStatus) bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusAssign, AssignmentStatusClose:
		return true
	}
	return false
}
