package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Every declared event field shows up in responses even when empty, so
// clients can rely on a fixed shape. updatedAt is the one exception: it only
// appears once the event has been updated.
func TestEventJSONExposesAllFields(t *testing.T) {
	payload, err := json.Marshal(&Event{
		ID:          1,
		Title:       "Launch",
		Description: "Launch party",
		EventType:   "general",
		ImageURL:    DefaultImageURL,
		CreatedBy:   1,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, key := range []string{"id", "title", "description", "eventType", "imageUrl", "location", "startDate", "endDate", "createdBy", "createdAt"} {
		require.Contains(t, decoded, key)
	}
	require.NotContains(t, decoded, "updatedAt")
}
