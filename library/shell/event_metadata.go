package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
)

// ErrMappingToEventMetadataFailed is returned when the metadata JSON of a stored event cannot be read.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// EventMetadata is stored next to every ledger event.
//
// Each Manager operation gets one command id. The appended event carries it as CausationID and
// CorrelationID, so the events of one operation, including those appended on a retry after a conflict,
// can be grouped. Operation names the ledger operation, e.g. "loan_item".
type EventMetadata struct {
	MessageID     string `json:"message_id"`
	CausationID   string `json:"causation_id"`
	CorrelationID string `json:"correlation_id"`
	Operation     string `json:"operation,omitempty"`
}

// BuildCommandMetadata returns the metadata for an event appended by operation on behalf of commandID.
func BuildCommandMetadata(commandID uuid.UUID, operation string) EventMetadata {
	return EventMetadata{
		MessageID:     uuid.NewString(),
		CausationID:   commandID.String(),
		CorrelationID: commandID.String(),
		Operation:     operation,
	}
}

func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return metadata, nil
}
