package contact_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liorae/liora/internal/contact"
)

func validValues() url.Values {
	return url.Values{
		"full_name": {"Amira Santos"},
		"email":     {"amira@example.com"},
		"company":   {"Santos Foods"},
		"website":   {"https://santosfoods.ph"},
		"budget":    {"75-120"},
		"timeline":  {"1m"},
		"services":  {"Content", "Reels"},
		"message":   {"We want to grow our IG presence."},
	}
}

func TestFromValues_DoesNotMutateInput(t *testing.T) {
	values := validValues()
	values["services"] = []string{"  Content  ", "Reels "}

	form := contact.FromValues(values)

	require.Equal(t, []string{"Content", "Reels"}, form.Services)
	require.Equal(t, []string{"  Content  ", "Reels "}, values["services"])
}

func TestFromValues_TrimsFields(t *testing.T) {
	values := validValues()
	values.Set("full_name", "  Amira Santos  ")
	values.Set("email", " amira@example.com ")

	form := contact.FromValues(values)

	require.Equal(t, "Amira Santos", form.FullName)
	require.Equal(t, "amira@example.com", form.Email)
}

func TestValidate_AcceptsCompleteForm(t *testing.T) {
	form := contact.FromValues(validValues())

	require.NoError(t, form.Validate())
	require.False(t, form.Spam())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(url.Values)
		want   string
	}{
		{
			name:   "missing name",
			mutate: func(v url.Values) { v.Del("full_name") },
			want:   "full_name is required",
		},
		{
			name:   "missing message",
			mutate: func(v url.Values) { v.Del("message") },
			want:   "message is required",
		},
		{
			name:   "bad email",
			mutate: func(v url.Values) { v.Set("email", "not-an-address") },
			want:   "invalid email address",
		},
		{
			name:   "unknown budget",
			mutate: func(v url.Values) { v.Set("budget", "1000000") },
			want:   "unknown budget choice",
		},
		{
			name:   "unknown timeline",
			mutate: func(v url.Values) { v.Set("timeline", "someday") },
			want:   "unknown timeline choice",
		},
		{
			name:   "unknown service",
			mutate: func(v url.Values) { v.Set("services", "Skywriting") },
			want:   "unknown service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			tt.mutate(values)

			err := contact.FromValues(values).Validate()

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSpam_HoneypotFilled(t *testing.T) {
	values := validValues()
	values.Set("hp", "http://spam.example")

	form := contact.FromValues(values)

	require.True(t, form.Spam())
	// The rest of the form still validates; spam is a separate signal.
	require.NoError(t, form.Validate())
}
