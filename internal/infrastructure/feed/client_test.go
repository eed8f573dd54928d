package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPrices_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"model":"iPhone 15","storage":"128GB","network":"Unlocked","price_grade_a":500,"price_doa":null}]`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, APIKey: "secret"}, nil)
	rows, err := c.FetchPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "iPhone 15", rows[0].Model)
	require.NotNil(t, rows[0].PriceGradeA)
	assert.Equal(t, 500.0, *rows[0].PriceGradeA)
	assert.Nil(t, rows[0].PriceDOA)
}

func TestFetchPrices_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"model":"Galaxy S24","storage":"256GB","network":"Verizon"}]}`))
	}))
	defer srv.Close()

	rows, err := New(Config{URL: srv.URL}, nil).FetchPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Galaxy S24", rows[0].Model)
}

func TestFetchPrices_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := New(Config{URL: srv.URL}, nil).FetchPrices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
