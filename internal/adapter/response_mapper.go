package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/dragonchain-go/models"
	"github.com/go-resty/resty/v2"
)

var jsonNull = json.RawMessage("null")

// mapResponse normalises a node answer. Every status code maps to a
// Response; nothing here returns an error.
func mapResponse(resp *resty.Response, rawText bool) models.Response {
	status := resp.StatusCode()

	return models.Response{
		Status: status,
		OK:     status >= http.StatusOK && status < http.StatusMultipleChoices,
		Body:   normalizeBody(resp.Body(), rawText),
	}
}

// normalizeBody guarantees valid JSON. Raw text and bodies that fail to
// parse are carried as a JSON string; an empty JSON body becomes null.
func normalizeBody(body []byte, rawText bool) json.RawMessage {
	if !rawText {
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			return jsonNull
		}
		if json.Valid(trimmed) {
			return json.RawMessage(bytes.Clone(trimmed))
		}
	}

	quoted, _ := json.Marshal(string(body))
	return quoted
}
