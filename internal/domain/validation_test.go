package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuestRequestValidate(t *testing.T) {
	email := "alice@example.com"
	tests := []struct {
		name    string
		req     CreateGuestRequest
		wantErr bool
	}{
		{"name only", CreateGuestRequest{Name: "Alice"}, false},
		{"name with contacts", CreateGuestRequest{Name: "Alice", Email: &email, Phone: strPtr("+628123456789")}, false},
		{"missing name", CreateGuestRequest{Email: &email}, true},
		{"email without domain", CreateGuestRequest{Name: "Alice", Email: strPtr("alice@")}, true},
		{"email without at sign", CreateGuestRequest{Name: "Alice", Email: strPtr("alice.example.com")}, true},
		{"email without tld", CreateGuestRequest{Name: "Alice", Email: strPtr("alice@example")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRsvpRequestValidate(t *testing.T) {
	attend := true

	t.Run("normalize defaults party size to one", func(t *testing.T) {
		req := CreateRsvpRequest{GuestID: 1, WillAttend: &attend}
		req.Normalize()
		assert.Equal(t, 1, req.NumberOfGuests)
		require.NoError(t, req.Validate())
	})

	t.Run("normalize keeps explicit party size", func(t *testing.T) {
		req := CreateRsvpRequest{GuestID: 1, WillAttend: &attend, NumberOfGuests: 7}
		req.Normalize()
		assert.Equal(t, 7, req.NumberOfGuests)
	})

	t.Run("will_attend is required", func(t *testing.T) {
		req := CreateRsvpRequest{GuestID: 1, NumberOfGuests: 2}
		assert.Error(t, req.Validate())
	})

	t.Run("guest_id is required", func(t *testing.T) {
		req := CreateRsvpRequest{WillAttend: &attend, NumberOfGuests: 2}
		assert.Error(t, req.Validate())
	})

	t.Run("party size bounds", func(t *testing.T) {
		for _, n := range []int{1, 5, 10} {
			req := CreateRsvpRequest{GuestID: 1, WillAttend: &attend, NumberOfGuests: n}
			assert.NoError(t, req.Validate(), "n=%d", n)
		}
		for _, n := range []int{-1, 11, 100} {
			req := CreateRsvpRequest{GuestID: 1, WillAttend: &attend, NumberOfGuests: n}
			assert.Error(t, req.Validate(), "n=%d", n)
		}
	})
}

func TestUpdateRsvpRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		req := UpdateRsvpRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("party size bounds apply when supplied", func(t *testing.T) {
		n := 10
		req := UpdateRsvpRequest{NumberOfGuests: &n}
		assert.NoError(t, req.Validate())

		n = 11
		assert.Error(t, req.Validate())
		n = 0
		assert.Error(t, req.Validate())
	})
}

func TestCreateWeddingPhotoRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https url", "https://cdn.example.com/photo.jpg", false},
		{"http url", "http://cdn.example.com/photo.jpg", false},
		{"empty", "", true},
		{"bare filename", "photo.jpg", true},
		{"missing host", "https://", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateWeddingPhotoRequest{URL: tt.url}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateWeddingInfoRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		req := UpdateWeddingInfoRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("clearing maps url is valid", func(t *testing.T) {
		req := UpdateWeddingInfoRequest{ReceptionMapsURL: Optional[string]{Set: true, Valid: false}}
		assert.NoError(t, req.Validate())
	})

	t.Run("malformed maps url rejected", func(t *testing.T) {
		req := UpdateWeddingInfoRequest{ReceptionMapsURL: Optional[string]{Set: true, Valid: true, Value: "venue"}}
		assert.Error(t, req.Validate())
	})
}

func strPtr(s string) *string { return &s }
