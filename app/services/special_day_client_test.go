package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyzlab/voyz-marketing/models"
)

// feedResponse builds the envelope shape the public calendar feed returns
func feedResponse(item any) string {
	payload := map[string]any{
		"response": map[string]any{
			"body": map[string]any{
				"items": map[string]any{"item": item},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestFetchMonth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("ServiceKey"))
		assert.Equal(t, "2026", r.URL.Query().Get("solYear"))
		assert.Equal(t, "05", r.URL.Query().Get("solMonth"))
		assert.Equal(t, "json", r.URL.Query().Get("_type"))

		w.Header().Set("Content-Type", "application/json")

		// Only the holiday endpoint returns records in this fixture.
		if r.URL.Path == "/getRestDeInfo" {
			fmt.Fprint(w, feedResponse([]map[string]any{
				{"dateName": "어린이날", "locdate": 20260505, "isHoliday": "Y"},
				{"dateName": "부처님오신날", "locdate": "20260524", "isHoliday": "Y"},
			}))
			return
		}
		fmt.Fprint(w, feedResponse(nil))
	}))
	defer server.Close()

	client := NewSpecialDayClient(server.URL, "test-key", time.Second)

	days, err := client.FetchMonth(context.Background(), 2026, time.May)

	require.NoError(t, err)
	require.Len(t, days, 2)

	byName := make(map[string]*models.SpecialDay)
	for _, d := range days {
		byName[d.Name] = d
	}

	childrensDay := byName["어린이날"]
	require.NotNil(t, childrensDay)
	assert.Equal(t, "공휴일", childrensDay.Type)
	assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), childrensDay.StartDate)
	assert.Equal(t, childrensDay.StartDate, childrensDay.EndDate)
	assert.True(t, childrensDay.IsHoliday)

	// Quoted locdate strings parse the same as bare numbers.
	buddhasBirthday := byName["부처님오신날"]
	require.NotNil(t, buddhasBirthday)
	assert.Equal(t, time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC), buddhasBirthday.StartDate)
}

func TestFetchMonthSingleObjectItem(t *testing.T) {
	// The feed returns a bare object, not an array, when exactly one record
	// matches.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/get24DivisionsInfo" {
			fmt.Fprint(w, feedResponse(map[string]any{
				"dateName": "하지", "locdate": 20260621, "isHoliday": "N",
			}))
			return
		}
		fmt.Fprint(w, feedResponse(nil))
	}))
	defer server.Close()

	client := NewSpecialDayClient(server.URL, "test-key", time.Second)

	days, err := client.FetchMonth(context.Background(), 2026, time.June)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "하지", days[0].Name)
	assert.Equal(t, "절기", days[0].Type)
	assert.False(t, days[0].IsHoliday)
}

func TestFetchMonthServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewSpecialDayClient(server.URL, "test-key", time.Second)

	_, err := client.FetchMonth(context.Background(), 2026, time.May)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchMonthSkipsUnparseableDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/getAnniversaryInfo" {
			fmt.Fprint(w, feedResponse([]map[string]any{
				{"dateName": "망가진 레코드", "locdate": "notadate", "isHoliday": "N"},
				{"dateName": "성년의 날", "locdate": 20260518, "isHoliday": "N"},
			}))
			return
		}
		fmt.Fprint(w, feedResponse(nil))
	}))
	defer server.Close()

	client := NewSpecialDayClient(server.URL, "test-key", time.Second)

	days, err := client.FetchMonth(context.Background(), 2026, time.May)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "성년의 날", days[0].Name)
}

func TestDecodeItems(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "array", raw: `[{"dateName":"a"},{"dateName":"b"}]`, expected: 2},
		{name: "single object", raw: `{"dateName":"a"}`, expected: 1},
		{name: "null", raw: `null`, expected: 0},
		{name: "empty string", raw: `""`, expected: 0},
		{name: "absent", raw: ``, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := decodeItems(json.RawMessage(tt.raw))

			require.NoError(t, err)
			assert.Len(t, items, tt.expected)
		})
	}
}
