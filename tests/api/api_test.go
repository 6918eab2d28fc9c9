//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// TestAPI_FullFlow exercises the whole booking journey end-to-end against a
// running server: register, create a tour, book it, review it, cancel, and
// finally delete the account.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var userID, tourID, bookingID float64

	t.Run("Step1_RegisterUser", func(t *testing.T) {
		t.Log("STEP 1: Register user")
		t.Log("   Request: POST /api/v1/users/register")

		resp := post(t, baseURL+"/api/v1/users/register", map[string]interface{}{
			"first_name": "Amina",
			"last_name":  "Khelif",
			"email":      fmt.Sprintf("amina+%d@example.com", time.Now().UnixNano()),
			"password":   "travel-far-2025",
		})
		require.Equal(t, 201, resp.StatusCode)

		var user map[string]interface{}
		decodeJSON(t, resp, &user)
		userID = user["id"].(float64)
		assert.Equal(t, "user", user["role"])
		t.Logf("   Result: HTTP 201, user id=%v", userID)
	})

	t.Run("Step2_CreateTour", func(t *testing.T) {
		t.Log("STEP 2: Create tour")
		t.Log("   Request: POST /api/v1/tours")

		resp := post(t, baseURL+"/api/v1/tours", map[string]interface{}{
			"title":          "Casbah Walking Tour",
			"city":           "Algiers",
			"address":        "1 Rue Didouche Mourad",
			"description":    "Half-day guided walk through the old town",
			"distance":       6,
			"duration":       4,
			"price":          120,
			"max_group_size": 8,
			"available_dates": []map[string]interface{}{
				{"date": "2026-10-01"},
				{"date": "2026-10-02", "available_slots": 4},
			},
		})
		require.Equal(t, 201, resp.StatusCode)

		var tour map[string]interface{}
		decodeJSON(t, resp, &tour)
		tourID = tour["id"].(float64)
		assert.Equal(t, "active", tour["status"])
		assert.Equal(t, float64(0), tour["rating"])
		t.Logf("   Result: HTTP 201, tour id=%v status=%v", tourID, tour["status"])
	})

	t.Run("Step3_CreateBooking", func(t *testing.T) {
		t.Log("STEP 3: Book the tour")
		t.Log("   Request: POST /api/v1/bookings")

		resp := post(t, baseURL+"/api/v1/bookings", map[string]interface{}{
			"user_id":       userID,
			"tour_id":       tourID,
			"group_size":    3,
			"selected_date": "2026-10-01",
		})
		require.Equal(t, 201, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		bookingID = booking["id"].(float64)
		assert.Equal(t, "confirmed", booking["status"])
		assert.Equal(t, "pending", booking["payment_status"])
		assert.Equal(t, float64(360), booking["total_price"])
		assert.NotEmpty(t, booking["reference"])
		t.Logf("   Result: HTTP 201, booking id=%v total=%v", bookingID, booking["total_price"])
	})

	t.Run("Step4_AvailableDates", func(t *testing.T) {
		t.Log("STEP 4: Check the ledger")
		t.Logf("   Request: GET /api/v1/tours/%v/available-dates", tourID)

		resp := get(t, fmt.Sprintf("%s/api/v1/tours/%v/available-dates", baseURL, tourID))
		require.Equal(t, 200, resp.StatusCode)

		var dates []map[string]interface{}
		decodeJSON(t, resp, &dates)
		require.Len(t, dates, 2)
		assert.Equal(t, float64(5), dates[0]["available_slots"], "3 of 8 slots consumed")
		assert.Equal(t, float64(4), dates[1]["available_slots"])
		t.Logf("   Result: HTTP 200, slots=%v/%v", dates[0]["available_slots"], dates[1]["available_slots"])
	})

	t.Run("Step5_OverbookRejected", func(t *testing.T) {
		t.Log("STEP 5: Overbooking is rejected")

		resp := post(t, baseURL+"/api/v1/bookings", map[string]interface{}{
			"user_id":       userID,
			"tour_id":       tourID,
			"group_size":    6,
			"selected_date": "2026-10-01",
		})
		assert.Equal(t, 400, resp.StatusCode)
		resp.Body.Close()
		t.Log("   Result: HTTP 400")
	})

	t.Run("Step6_MarkPaid", func(t *testing.T) {
		t.Log("STEP 6: Mark the booking paid")

		resp := patch(t, fmt.Sprintf("%s/api/v1/bookings/%v/payment-status", baseURL, bookingID),
			map[string]interface{}{"payment_status": "paid"})
		require.Equal(t, 200, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		assert.Equal(t, "paid", booking["payment_status"])
		t.Log("   Result: HTTP 200, payment_status=paid")
	})

	t.Run("Step7_ReviewTour", func(t *testing.T) {
		t.Log("STEP 7: Leave a review, then revise it")

		resp := post(t, baseURL+"/api/v1/reviews", map[string]interface{}{
			"user_id": userID,
			"tour_id": tourID,
			"rating":  4,
			"comment": "great guide",
		})
		require.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()

		resp = post(t, baseURL+"/api/v1/reviews", map[string]interface{}{
			"user_id": userID,
			"tour_id": tourID,
			"rating":  5,
			"comment": "even better on reflection",
		})
		require.Equal(t, 200, resp.StatusCode)
		resp.Body.Close()

		resp = get(t, fmt.Sprintf("%s/api/v1/tours/%v", baseURL, tourID))
		require.Equal(t, 200, resp.StatusCode)
		var tour map[string]interface{}
		decodeJSON(t, resp, &tour)
		assert.Equal(t, float64(5), tour["rating"], "upsert keeps only the latest rating")
		t.Logf("   Result: rating=%v", tour["rating"])
	})

	t.Run("Step8_CancelBooking", func(t *testing.T) {
		t.Log("STEP 8: Cancel the booking")

		resp := patch(t, fmt.Sprintf("%s/api/v1/bookings/%v/cancel", baseURL, bookingID), nil)
		require.Equal(t, 200, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		assert.Equal(t, "cancelled", booking["status"])

		// Second cancel is rejected
		resp = patch(t, fmt.Sprintf("%s/api/v1/bookings/%v/cancel", baseURL, bookingID), nil)
		assert.Equal(t, 400, resp.StatusCode)
		resp.Body.Close()
		t.Log("   Result: cancelled once, second attempt rejected")
	})

	t.Run("Step9_DeleteUser", func(t *testing.T) {
		t.Log("STEP 9: Delete the account")

		resp := del(t, fmt.Sprintf("%s/api/v1/users/%v", baseURL, userID))
		require.Equal(t, 200, resp.StatusCode)

		var summary map[string]interface{}
		decodeJSON(t, resp, &summary)
		assert.Equal(t, float64(1), summary["bookings_deleted"])
		assert.Equal(t, float64(1), summary["reviews_deleted"])
		t.Logf("   Result: bookings_deleted=%v reviews_deleted=%v",
			summary["bookings_deleted"], summary["reviews_deleted"])
	})
}

func waitForService(t *testing.T) {
	t.Log("Waiting for server to be ready...")

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			t.Log("Server is ready")
			return
		}
		time.Sleep(1 * time.Second)
	}

	t.Fatal("server did not become ready in time")
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, url string, body interface{}) *http.Response {
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	return resp
}

func patch(t *testing.T, url string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(http.MethodPatch, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func del(t *testing.T, url string) *http.Response {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(target)
	if err != nil && resp.StatusCode >= 400 {
		// For error responses, body might not be JSON
		return
	}
	require.NoError(t, err)
}

func TestMain(m *testing.M) {
	fmt.Println("Starting API tests...")
	fmt.Println("Make sure the server is running: make docker-up")
	fmt.Println("")

	code := m.Run()

	fmt.Println("")
	fmt.Println("API tests complete")
	os.Exit(code)
}
