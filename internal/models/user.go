package models

// Identity is a provider-side user record as seen by this system. Durable
// state for identities lives in the external identity provider; this type
// only exists for the duration of one request.
type Identity struct {
	UID          string
	Email        string
	DisplayName  string
	CustomClaims map[string]interface{}
}

// CropAdminClaim is the custom claim marking privileged identities
const CropAdminClaim = "cropAdmin"

// IsCropAdmin reports whether the identity already carries the elevated marker
func (i Identity) IsCropAdmin() bool {
	v, ok := i.CustomClaims[CropAdminClaim]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// RosterEntry is the per-user aggregate returned by the roster filter,
// assembled from the identity provider and the realtime database.
type RosterEntry struct {
	UID         string        `json:"uid"`
	Email       string        `json:"email"`
	DisplayName string        `json:"displayName"`
	Crops       []interface{} `json:"crops"`
}

// NormalizeCrops coerces a raw database value into a crop list. The backing
// store may hold the crops node as an object keyed by push IDs, as a plain
// array, or not at all; anything unrecognized defaults to an empty list
// rather than an error.
func NormalizeCrops(raw interface{}) []interface{} {
	switch v := raw.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return v
	case map[string]interface{}:
		crops := make([]interface{}, 0, len(v))
		for _, item := range v {
			crops = append(crops, item)
		}
		return crops
	default:
		return []interface{}{}
	}
}
