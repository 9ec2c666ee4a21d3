package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const msgInvalidResults = `Missing or invalid "testResults" in the request body.`

// DecodeRequest reads a POST body and returns its test results. Bodies
// larger than limit bytes are rejected; limit <= 0 disables the cap.
func DecodeRequest(r io.Reader, limit int64) ([]TestResult, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, validationError("read body: "+err.Error(), err)
	}
	if limit > 0 && int64(len(body)) > limit {
		return nil, validationError(fmt.Sprintf("request body too large (max %d bytes)", limit), nil)
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return nil, validationError(msgInvalidResults, err)
		}
		return nil, validationError("bad json: "+err.Error(), err)
	}

	raw := bytes.TrimSpace(req.TestResults)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, validationError(msgInvalidResults, errors.New("testResults is not an array"))
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, validationError(msgInvalidResults, err)
	}

	results := make([]TestResult, 0, len(elems))
	for _, el := range elems {
		if r, ok := decodeResult(el); ok {
			results = append(results, r)
		}
	}
	return results, nil
}

// decodeResult reads one array element. Elements that are not objects, or
// whose kanjiChar or rating is not a string, carry no usable rating and are
// skipped rather than failing the batch.
func decodeResult(el json.RawMessage) (TestResult, bool) {
	var fields struct {
		KanjiChar json.RawMessage `json:"kanjiChar"`
		Rating    json.RawMessage `json:"rating"`
	}
	if err := json.Unmarshal(el, &fields); err != nil {
		return TestResult{}, false
	}

	var r TestResult
	if !isString(fields.KanjiChar) || json.Unmarshal(fields.KanjiChar, &r.KanjiChar) != nil {
		return TestResult{}, false
	}
	if !isString(fields.Rating) || json.Unmarshal(fields.Rating, &r.Rating) != nil {
		return TestResult{}, false
	}
	return r, true
}

func isString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}
