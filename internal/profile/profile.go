// Package profile holds the owner's bio, career history and contact details
// shown on the home, about and contact pages.
package profile

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/profile.yaml
var profileYAML []byte

type Highlight struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Card is a titled blurb: a service, a technology being explored or a
// working approach.
type Card struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Entry is one job or degree on the timeline.
type Entry struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Period       string `yaml:"period"`
	Description  string `yaml:"description"`
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type ContactDetails struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Profile struct {
	Name       string         `yaml:"name"`
	Role       string         `yaml:"role"`
	Portrait   string         `yaml:"portrait"`
	Tagline    string         `yaml:"tagline"`
	Headline   string         `yaml:"headline"`
	Intro      []string       `yaml:"intro"`
	Highlights []Highlight    `yaml:"highlights"`
	Services   []Card         `yaml:"services"`
	Experience []Entry        `yaml:"experience"`
	Education  []Entry        `yaml:"education"`
	Exploring  []Card         `yaml:"exploring"`
	Skills     []SkillGroup   `yaml:"skills"`
	Approaches []Card         `yaml:"approaches"`
	Contact    ContactDetails `yaml:"contact"`
	Social     []Link         `yaml:"social"`
}

// Load parses the bundled profile.
func Load() (*Profile, error) {
	return Parse(profileYAML)
}

// Parse decodes a profile document. Name and contact email are required.
func Parse(raw []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.Name == "" {
		return nil, errors.New("parse profile: name is required")
	}
	if p.Contact.Email == "" {
		return nil, errors.New("parse profile: contact email is required")
	}
	return &p, nil
}

// MailtoURL returns the mailto link for the contact email.
func (p *Profile) MailtoURL() string { return "mailto:" + p.Contact.Email }

// PhoneURL returns the tel link for the contact phone, or "" when unset.
func (p *Profile) PhoneURL() string {
	if p.Contact.Phone == "" {
		return ""
	}
	return "tel:" + p.Contact.Phone
}
