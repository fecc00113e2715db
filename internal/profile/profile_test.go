package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Abd Elbasset Khettabi", p.Name)
	assert.Len(t, p.Intro, 2)
	assert.Len(t, p.Services, 3)
	assert.Len(t, p.Experience, 4)
	assert.Len(t, p.Education, 1)
	assert.Len(t, p.Exploring, 3)
	assert.Len(t, p.Skills, 4)
	assert.Len(t, p.Approaches, 4)
	assert.Equal(t, "2025 - Present", p.Experience[0].Period)
	assert.Equal(t, "mailto:abdelbassetkhettabi@gmail.com", p.MailtoURL())
	assert.Equal(t, "tel:+213698586910", p.PhoneURL())
}

func TestParseRequiresNameAndEmail(t *testing.T) {
	_, err := Parse([]byte("contact:\n  email: a@b.c\n"))
	require.ErrorContains(t, err, "name is required")

	_, err = Parse([]byte("name: A\n"))
	require.ErrorContains(t, err, "contact email is required")

	_, err = Parse([]byte("name: [unterminated"))
	require.Error(t, err)
}

func TestPhoneURLEmpty(t *testing.T) {
	p, err := Parse([]byte("name: A\ncontact:\n  email: a@b.c\n"))
	require.NoError(t, err)
	assert.Empty(t, p.PhoneURL())
}
