package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
	"github.com/propdex/propdex/internal/index"
	propertyrepo "github.com/propdex/propdex/internal/repository/property"
	healthuc "github.com/propdex/propdex/internal/usecase/health"
	propertyuc "github.com/propdex/propdex/internal/usecase/property"
)

func testRouter(t *testing.T, built bool) chi.Router {
	t.Helper()

	lat1, lon1 := 40.4168, -3.7038
	lat2, lon2 := 41.3851, 2.1734
	records := []domain.Property{
		{ID: 1, Name: "Hotel Madrid Centro", Type: domain.TypeHotel,
			Location:      domain.Location{City: "Madrid", Country: "Spain", Latitude: &lat1, Longitude: &lon1},
			PricePerNight: 150, Amenities: []string{"WiFi", "Pool"}, MaxGuests: 2, Bedrooms: 1, Rating: 4.5},
		{ID: 2, Name: "Barcelona Beach Apartment", Type: domain.TypeApartment,
			Location:      domain.Location{City: "Barcelona", Country: "Spain", Latitude: &lat2, Longitude: &lon2},
			PricePerNight: 160, Amenities: []string{"WiFi"}, MaxGuests: 5, Bedrooms: 2, Rating: 4.1},
	}

	ix := index.New()
	if built {
		if err := ix.Build(context.Background(), records); err != nil {
			t.Fatalf("Build: %v", err)
		}
	}

	repo := propertyrepo.New(ix)
	server := NewServer(propertyuc.New(repo), healthuc.New(repo), zap.NewNop())

	r := chi.NewRouter()
	server.Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGetProperty(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/properties/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rr.Code)
	}

	var p domain.Property
	if err := json.Unmarshal(rr.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 1 || p.Name != "Hotel Madrid Centro" {
		t.Errorf("unexpected property: %+v", p)
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/properties/999", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, expected 404", rr.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeNotFound {
		t.Errorf("code = %q, expected %q", resp.Code, codeNotFound)
	}
}

func TestGetProperty_BadID(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodGet, "/properties/abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rr.Code)
	}
}

func TestSearchProperties(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodPost, "/properties/search", `{"cities":["Madrid"],"facets":["city"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rr.Code)
	}

	var result search.Result
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalHits != 1 {
		t.Errorf("TotalHits = %d, expected 1", result.TotalHits)
	}
	if len(result.Items) != 1 || result.Items[0].Location.City != "Madrid" {
		t.Errorf("unexpected items: %+v", result.Items)
	}
	if len(result.Facets) != 1 || result.Facets[0].Name != "city" {
		t.Errorf("unexpected facets: %+v", result.Facets)
	}
}

func TestSearchProperties_EmptyBodyFilters(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodPost, "/properties/search", `{}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rr.Code)
	}

	var result search.Result
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalHits != 2 {
		t.Errorf("TotalHits = %d, expected the whole catalog", result.TotalHits)
	}
}

func TestSearchProperties_CoordinatesOutOfRange(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodPost, "/properties/search",
		`{"latitude":95.0,"longitude":-3.7,"radiusKm":10}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rr.Code)
	}
}

func TestSearchProperties_InvalidJSON(t *testing.T) {
	r := testRouter(t, true)

	rr := doJSON(t, r, http.MethodPost, "/properties/search", `{"cities":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", rr.Code)
	}
}

func TestSearchProperties_IndexNotReady(t *testing.T) {
	r := testRouter(t, false)

	rr := doJSON(t, r, http.MethodPost, "/properties/search", `{}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, expected 503", rr.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeNotReady {
		t.Errorf("code = %q, expected %q", resp.Code, codeNotReady)
	}
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name           string
		built          bool
		expectedStatus int
		expectedBody   string
	}{
		{"ready index", true, http.StatusOK, `"status":"ok"`},
		{"unbuilt index", false, http.StatusServiceUnavailable, `"status":"degraded"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRouter(t, tc.built)
			rr := doJSON(t, r, http.MethodGet, "/healthz", "")
			if rr.Code != tc.expectedStatus {
				t.Errorf("status = %d, expected %d", rr.Code, tc.expectedStatus)
			}
			if !strings.Contains(rr.Body.String(), tc.expectedBody) {
				t.Errorf("body %q does not contain %q", rr.Body.String(), tc.expectedBody)
			}
		})
	}
}
