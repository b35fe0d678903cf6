//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAndLogin(t *testing.T, env *TestEnv, client *http.Client, email, fullName, role string) string {
	payload := map[string]string{
		"email":     email,
		"password":  "password123",
		"full_name": fullName,
		"role":      role,
	}
	body, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env.VerifyEmail(t, email)

	loginBody, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "password123",
	})
	resp, err = client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["access_token"].(string)
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	var reqBody *bytes.Buffer
	if payload != nil {
		body, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestModerationFlow(t *testing.T) {
	// Assumes the API server is running on localhost:8080 against the same
	// database as the test runner.

	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	var expertToken, adminToken, clientToken string
	var articleID string

	t.Run("Register participants", func(t *testing.T) {
		expertToken = registerAndLogin(t, env, client, "expert@example.com", "Expert User", "expert")
		clientToken = registerAndLogin(t, env, client, "client@example.com", "Client User", "client")

		adminToken = registerAndLogin(t, env, client, "admin@example.com", "Admin User", "client")
		env.Promote(t, "admin@example.com", "admin")
		// Re-login so the loaded user carries the new role
		adminToken = loginOnly(t, client, "admin@example.com")
	})

	t.Run("Expert creates a draft article", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/articles", expertToken, map[string]interface{}{
			"title":   "Дыхательные практики",
			"content": "Подробный разбор техник дыхания.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		articleID = result["id"].(string)
		assert.Equal(t, "draft", result["moderation_status"])
		assert.Equal(t, false, result["is_published"])
	})

	t.Run("Draft is invisible to the public", func(t *testing.T) {
		resp, _ := doJSON(t, client, "GET", baseURL+"/articles/"+articleID, clientToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Expert submits for moderation", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/articles/"+articleID+"/publish", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// Resubmitting a pending article is a conflict
		resp, _ = doJSON(t, client, "POST", baseURL+"/articles/"+articleID+"/publish", expertToken, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Admin sees it in the pending queue", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/admin/articles/pending", adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].([]interface{})
		found := false
		for _, item := range data {
			if item.(map[string]interface{})["id"] == articleID {
				found = true
				break
			}
		}
		assert.True(t, found, "Article should be in the pending queue")
	})

	t.Run("Admin approves", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", fmt.Sprintf("%s/admin/articles/%s/approve", baseURL, articleID), adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Published article is public", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/articles/"+articleID, clientToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "approved", result["moderation_status"])
		assert.Equal(t, true, result["is_published"])
	})

	t.Run("Expert received a notification", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/notifications", expertToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].([]interface{})
		require.NotEmpty(t, data)
	})

	t.Run("Client likes the article", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/articles/"+articleID+"/like", clientToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, result["liked"])

		resp, result = doJSON(t, client, "POST", baseURL+"/articles/"+articleID+"/like", clientToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, result["liked"])
	})

	t.Run("Approval is in the audit log", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", fmt.Sprintf("%s/admin/audit-logs/article/%s", baseURL, articleID), adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := result["data"].([]interface{})
		require.NotEmpty(t, data)
		entry := data[0].(map[string]interface{})
		assert.Equal(t, "approve", entry["action_type"])
	})

	t.Run("Client cannot reach the admin queue", func(t *testing.T) {
		resp, _ := doJSON(t, client, "GET", baseURL+"/admin/articles/pending", clientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func loginOnly(t *testing.T, client *http.Client, email string) string {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "password123",
	})
	resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["access_token"].(string)
}
