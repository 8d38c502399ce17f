package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/shiftctl/internal/errors"
)

func TestAudioPayloadBytes(t *testing.T) {
	raw := []byte("fake mp3 bytes")
	p := AudioPayload{
		AudioBase64: base64.StdEncoding.EncodeToString(raw),
		ContentType: "audio/mpeg",
	}

	got, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestAudioPayloadBytesBadEncoding(t *testing.T) {
	p := AudioPayload{AudioBase64: "%%% not base64 %%%"}

	_, err := p.Bytes()
	require.Error(t, err)

	var coded *errors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, errors.ErrCodeNetworkDecode, coded.Code)
}

func TestScheduleSuggestions(t *testing.T) {
	var body map[string]int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai/schedule-suggestions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"ai_suggestion": "Assign two nurses from ICU night pool.", "model": "gpt-4o-mini"}`))
	}))

	resp, err := client.ScheduleSuggestions(context.Background(), 14)
	require.NoError(t, err)

	assert.Equal(t, 14, body["shift_id"])
	assert.Equal(t, "Assign two nurses from ICU night pool.", resp.Suggestion)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
}

func TestGenerateAnnouncementRequiresMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty message must not reach the network")
	}))

	_, err := client.GenerateAnnouncement(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestTextToSpeech(t *testing.T) {
	audio := base64.StdEncoding.EncodeToString([]byte("audio"))
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai/text-to-speech", r.URL.Path)
		w.Write([]byte(`{"audio_base64": "` + audio + `", "content_type": "audio/mpeg"}`))
	}))

	payload, err := client.TextToSpeech(context.Background(), "Visiting hours end at 8pm")
	require.NoError(t, err)

	data, err := payload.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), data)
	assert.Equal(t, "audio/mpeg", payload.ContentType)
}

func TestAIWaitHonorsCancellation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tip": "Stagger handovers."}`))
	}))

	// Exhaust the limiter's burst, then cancel before the next slot.
	_, err := client.SchedulingTip(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.SchedulingTip(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsNetwork(err))
}
