package usecase

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"paystand_bridge/internal/domain/entities"
)

// ClassifyUpstreamResponse turns a raw Paystand response into Success, Failure
// or Malformed.
//
// Success only depends on successKey being present at the top level; its value
// is ignored. An empty successKey marks a pass-through call: any JSON body is a
// Success and is relayed as-is. Failure needs an error object with a string
// description and a 4xx/5xx status, taken from error.status or, when that is
// absent, from the HTTP status of the response. Anything else is Malformed.
func ClassifyUpstreamResponse(resp entities.UpstreamResponse, successKey string) entities.UpstreamResult {
	raw := json.RawMessage(resp.Body)

	if successKey == "" {
		if !json.Valid(resp.Body) {
			return entities.UpstreamResult{Kind: entities.UpstreamMalformed, Raw: raw, Status: resp.StatusCode}
		}
		return entities.UpstreamResult{Kind: entities.UpstreamSuccess, Raw: raw, Status: resp.StatusCode}
	}

	// Numbers decode as json.Number.
	var body map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(resp.Body))
	dec.UseNumber()
	if !json.Valid(resp.Body) || dec.Decode(&body) != nil || body == nil {
		return entities.UpstreamResult{Kind: entities.UpstreamMalformed, Raw: raw, Status: resp.StatusCode}
	}

	if _, ok := body[successKey]; ok {
		return entities.UpstreamResult{Kind: entities.UpstreamSuccess, Payload: body, Raw: raw, Status: resp.StatusCode}
	}

	if errObj, ok := body["error"].(map[string]interface{}); ok {
		description, hasDescription := errObj["description"].(string)
		status := parseUpstreamStatus(errObj["status"])
		if status == 0 {
			status = resp.StatusCode
		}
		if hasDescription && status >= 400 && status <= 599 {
			return entities.UpstreamResult{Kind: entities.UpstreamFailure, Raw: raw, Status: status, Description: description}
		}
	}

	return entities.UpstreamResult{Kind: entities.UpstreamMalformed, Raw: raw, Status: resp.StatusCode}
}

func parseUpstreamStatus(v interface{}) int {
	switch s := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(s.String())
		if err != nil {
			return 0
		}
		return n
	case float64:
		if s != math.Trunc(s) {
			return 0
		}
		return int(s)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
