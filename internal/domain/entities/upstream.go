package entities

import "encoding/json"

// UpstreamResponse is what the Paystand client hands back: the HTTP status and
// the untouched body.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

type UpstreamResultKind string

const (
	UpstreamSuccess   UpstreamResultKind = "success"
	UpstreamFailure   UpstreamResultKind = "failure"
	UpstreamMalformed UpstreamResultKind = "malformed"
)

// UpstreamResult is the classified outcome of a Paystand call.
//
//   - Success: Payload is the decoded top-level object.
//   - Failure: Status and Description come from error.status / error.description.
//   - Malformed: neither shape was found; Raw keeps the body for logging.
type UpstreamResult struct {
	Kind        UpstreamResultKind
	Payload     map[string]interface{}
	Raw         json.RawMessage
	Status      int
	Description string
}
