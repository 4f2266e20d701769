package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"irrigation-api/internal/models"
)

// fakeProvider is an in-memory identity provider for service tests
type fakeProvider struct {
	mintCount   int
	mintErr     error
	claims      map[string]map[string]interface{}
	claimsErr   error
	verifyErr   error
	verifiedUID string
	pages       [][]models.Identity
	listErr     error
	listCalls   int
}

func (f *fakeProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	if f.mintErr != nil {
		return "", f.mintErr
	}
	f.mintCount++
	return "token-" + uid + "-" + strconv.Itoa(f.mintCount), nil
}

func (f *fakeProvider) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	if f.claimsErr != nil {
		return f.claimsErr
	}
	if f.claims == nil {
		f.claims = make(map[string]map[string]interface{})
	}
	f.claims[uid] = claims
	return nil
}

func (f *fakeProvider) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifiedUID, nil
}

func (f *fakeProvider) ListUsers(ctx context.Context, pageToken string, pageSize int) ([]models.Identity, string, error) {
	if f.listErr != nil {
		return nil, "", f.listErr
	}
	f.listCalls++

	page := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil {
			return nil, "", errors.New("bad page token")
		}
		page = n
	}
	if page >= len(f.pages) {
		return nil, "", nil
	}

	next := ""
	if page+1 < len(f.pages) {
		next = strconv.Itoa(page + 1)
	}
	return f.pages[page], next, nil
}

// fakeCropStore serves canned raw crop values keyed by uid
type fakeCropStore struct {
	values map[string]interface{}
	errFor string
}

func (f *fakeCropStore) Crops(ctx context.Context, uid string) (interface{}, error) {
	if f.errFor != "" && uid == f.errFor {
		return nil, fmt.Errorf("database read failed for %s", uid)
	}
	return f.values[uid], nil
}

// fakeGeocoder resolves every address to fixed coordinates
type fakeGeocoder struct {
	coords models.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	f.calls++
	if f.err != nil {
		return models.Coordinates{}, f.err
	}
	return f.coords, nil
}

// fakeForecastProvider returns canned forecast records
type fakeForecastProvider struct {
	records []models.ForecastRecord
	err     error
	calls   int
}

func (f *fakeForecastProvider) DailyPrecipitation(ctx context.Context, coords models.Coordinates) ([]models.ForecastRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}
