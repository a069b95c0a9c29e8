package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voteboard/api/internal/core/domain"
)

func castVote(t *testing.T, app *TestApp, token string, pollID, choiceID uuid.UUID) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{"choice_id": choiceID})
	req, err := http.NewRequest("POST", fmt.Sprintf("%s/api/polls/%s/votes", app.Server.URL, pollID), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestVoteReplacement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	poll := createPoll(t, app, pollPayload("Switch test?", []string{"Opt A", "Opt B"}, 1, 0))
	token := createUserAndToken(t, app.DB)

	// 1. Vote for Option A
	resp := castVote(t, app, token, poll.ID, poll.Choices[0].ID)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var count int
	err := app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id=$1 AND choice_id=$2", poll.ID, poll.Choices[0].ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// 2. Vote for Option B: replaces A, no second row
	resp = castVote(t, app, token, poll.ID, poll.Choices[1].ID)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	err = app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id=$1", poll.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var choiceID string
	err = app.DB.QueryRow("SELECT choice_id FROM votes WHERE poll_id=$1", poll.ID).Scan(&choiceID)
	require.NoError(t, err)
	assert.Equal(t, poll.Choices[1].ID.String(), choiceID)

	// 3. Revote for the same option is a no-op success
	resp = castVote(t, app, token, poll.ID, poll.Choices[1].ID)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	err = app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id=$1", poll.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestVoteOnClosedPoll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	poll := createPoll(t, app, pollPayload("Closed already?", []string{"A", "B"}, 0, 1))
	token := createUserAndToken(t, app.DB)

	_, err := app.DB.Exec("UPDATE polls SET expires_at = NOW() - INTERVAL '1 minute' WHERE id = $1", poll.ID)
	require.NoError(t, err)

	resp := castVote(t, app, token, poll.ID, poll.Choices[0].ID)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestVoteUnknownChoice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	poll := createPoll(t, app, pollPayload("Unknown choice?", []string{"A", "B"}, 0, 1))
	token := createUserAndToken(t, app.DB)

	resp := castVote(t, app, token, poll.ID, uuid.New())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVoteUnauthorized(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	poll := createPoll(t, app, pollPayload("Anonymous vote?", []string{"A", "B"}, 0, 1))

	resp := castVote(t, app, "", poll.ID, poll.Choices[0].ID)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetMyVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	poll := createPoll(t, app, pollPayload("My vote?", []string{"Yes", "No"}, 1, 0))
	token := createUserAndToken(t, app.DB)

	// before voting: 404
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/api/polls/%s/my-vote", app.Server.URL, poll.ID), nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = castVote(t, app, token, poll.ID, poll.Choices[0].ID)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req, err = http.NewRequest("GET", fmt.Sprintf("%s/api/polls/%s/my-vote", app.Server.URL, poll.ID), nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vote domain.Vote
	err = json.NewDecoder(resp.Body).Decode(&vote)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, poll.Choices[0].ID, vote.ChoiceID)
}
