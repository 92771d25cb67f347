package interfaces

import (
	"context"

	"paystand_bridge/internal/domain/entities"
)

// IPaystandClient abstracts the Paystand REST API.
//
// Post sends body as JSON to path (relative to the configured base URL). The
// authorization value is forwarded untouched and omitted when empty. A non-nil
// error means no usable HTTP response was received.
type IPaystandClient interface {
	Post(ctx context.Context, path string, authorization string, body map[string]interface{}) (entities.UpstreamResponse, error)
}
