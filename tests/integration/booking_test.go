//go:build integration
// +build integration

package integration_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFlow(t *testing.T) {
	// Assumes the API server is running on localhost:8080 against the same
	// database as the test runner.

	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	expertToken := registerAndLogin(t, env, client, "guru@example.com", "Booking Expert", "expert")
	clientToken := registerAndLogin(t, env, client, "seeker@example.com", "Booking Client", "client")

	var expertID string
	var bookingID string

	t.Run("Resolve expert id", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/users/me", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		expertID = result["id"].(string)
	})

	t.Run("Client books a slot", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/bookings", clientToken, map[string]interface{}{
			"expert_id": expertID,
			"date":      time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
			"time_slot": "14:00-15:00",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		bookingID = result["id"].(string)
		assert.Equal(t, "pending", result["status"])
	})

	t.Run("Booking yourself is rejected", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/bookings", expertToken, map[string]interface{}{
			"expert_id": expertID,
			"date":      time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
			"time_slot": "14:00-15:00",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Expert sees the request", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/bookings/expert", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].([]interface{})
		require.NotEmpty(t, data)
		assert.Equal(t, bookingID, data[0].(map[string]interface{})["id"])
	})

	t.Run("Client cannot confirm", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/bookings/"+bookingID+"/confirm", clientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Expert confirms", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/bookings/"+bookingID+"/confirm", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// A second confirm hits the state guard
		resp, _ = doJSON(t, client, "POST", baseURL+"/bookings/"+bookingID+"/confirm", expertToken, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Expert cannot cancel", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/bookings/"+bookingID+"/cancel", expertToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Client cancels the confirmed booking", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/bookings/"+bookingID+"/cancel", clientToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, result := doJSON(t, client, "GET", baseURL+"/bookings/"+bookingID, clientToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "cancelled", result["status"])
	})

	t.Run("Expert got notified about the cancellation", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/notifications/unread-count", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Greater(t, result["unread_count"].(float64), float64(0))
	})
}
