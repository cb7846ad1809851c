package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RoleKind tags which marketplace party a user acts as.
type RoleKind int

const (
	RoleNone RoleKind = iota
	RoleSponsor
	RolePublisher
)

func (k RoleKind) String() string {
	switch k {
	case RoleSponsor:
		return "sponsor"
	case RolePublisher:
		return "publisher"
	default:
		return ""
	}
}

// Role is the result of resolving a user against the sponsor and publisher
// tables. Kind selects which of SponsorID or PublisherID is meaningful;
// switch on Kind before reading either.
type Role struct {
	Kind        RoleKind
	SponsorID   uuid.UUID
	PublisherID uuid.UUID
	Name        string
}

// NoRole is returned for users that own neither a sponsor nor a publisher.
func NoRole() Role {
	return Role{Kind: RoleNone}
}

func SponsorRole(id uuid.UUID, name string) Role {
	return Role{Kind: RoleSponsor, SponsorID: id, Name: name}
}

func PublisherRole(id uuid.UUID, name string) Role {
	return Role{Kind: RolePublisher, PublisherID: id, Name: name}
}

// MarshalJSON renders the role in the wire shape
// {"role":"sponsor","sponsorId":...,"name":...},
// {"role":"publisher","publisherId":...,"name":...} or {"role":null}.
func (r Role) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RoleSponsor:
		return json.Marshal(struct {
			Role      string    `json:"role"`
			SponsorID uuid.UUID `json:"sponsorId"`
			Name      string    `json:"name"`
		}{r.Kind.String(), r.SponsorID, r.Name})
	case RolePublisher:
		return json.Marshal(struct {
			Role        string    `json:"role"`
			PublisherID uuid.UUID `json:"publisherId"`
			Name        string    `json:"name"`
		}{r.Kind.String(), r.PublisherID, r.Name})
	default:
		return []byte(`{"role":null}`), nil
	}
}
