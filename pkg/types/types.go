package types

import (
	"encoding/json"
	"time"
)

const (
	FeatureCreated string = "created"
	FeatureChanged string = "updated"
)

// FeatureUpdated is published after a feature has been stored. Feature holds
// the GeoJSON representation as it was persisted.
type FeatureUpdated struct {
	EventID      string          `json:"eventId"`
	Action       string          `json:"action"`
	CollectionID int64           `json:"collectionId"`
	FeatureID    int64           `json:"featureId"`
	Feature      json.RawMessage `json:"feature,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

func (f *FeatureUpdated) Body() []byte {
	b, _ := json.Marshal(f)
	return b
}
func (f *FeatureUpdated) ContentType() string {
	return "application/vnd.diwise.feature+json"
}
func (f *FeatureUpdated) TopicName() string {
	return "feature.updated"
}
