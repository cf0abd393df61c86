package model

import "time"

type Agent struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Whatsapp    string   `json:"whatsapp,omitempty"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Experience  int      `json:"experience,omitempty"`
	Languages   []string `json:"languages,omitempty"`

	// Properties is a denormalized back-reference: property ids this agent
	// claims, independent of each property's own agentId.
	Properties []string `json:"properties,omitempty"`

	Rating    float64   `json:"rating,omitempty"`
	Reviews   int       `json:"reviews,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AgentPatch struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Whatsapp    *string  `json:"whatsapp"`
	PhotoURL    *string  `json:"photoUrl"`
	Bio         *string  `json:"bio"`
	Specialties []string `json:"specialties"`
	Experience  *int     `json:"experience"`
	Languages   []string `json:"languages"`
	Properties  []string `json:"properties"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
}

// Apply merges the set fields of the patch into a.
func (patch AgentPatch) Apply(a *Agent) {
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Email != nil {
		a.Email = *patch.Email
	}
	if patch.Phone != nil {
		a.Phone = *patch.Phone
	}
	if patch.Whatsapp != nil {
		a.Whatsapp = *patch.Whatsapp
	}
	if patch.PhotoURL != nil {
		a.PhotoURL = *patch.PhotoURL
	}
	if patch.Bio != nil {
		a.Bio = *patch.Bio
	}
	if patch.Specialties != nil {
		a.Specialties = patch.Specialties
	}
	if patch.Experience != nil {
		a.Experience = *patch.Experience
	}
	if patch.Languages != nil {
		a.Languages = patch.Languages
	}
	if patch.Properties != nil {
		a.Properties = patch.Properties
	}
	if patch.Rating != nil {
		a.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		a.Reviews = *patch.Reviews
	}
}
