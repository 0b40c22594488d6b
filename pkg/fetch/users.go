package fetch

import (
	"fmt"
	"net/http"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/tidwall/gjson"
)

// SearchUser renders the answer of a user search endpoint: "[<id>] <name>"
// for a match, the no-result message for an empty object and the invalid
// JSON message when the body cannot be parsed.
func SearchUser(body []byte) string {
	if !gjson.ValidBytes(body) {
		return domain.MsgInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if isEmptyJSON(doc) {
		return domain.MsgNoResult
	}
	return fmt.Sprintf("[%s] %s", valueOrNone(doc.Get("id")), valueOrNone(doc.Get("name")))
}

// ErrorCode returns the body as text, or "Error code: <status>" for
// statuses of 400 and above.
func ErrorCode(resp Response) string {
	if resp.Status >= http.StatusBadRequest {
		return fmt.Sprintf("Error code: %d", resp.Status)
	}
	return string(resp.Body)
}

// RequestID returns the X-Request-Id response header and whether it was set.
func RequestID(resp Response) (string, bool) {
	v := resp.Header.Get(HeaderRequestID)
	return v, v != ""
}

func isEmptyJSON(r gjson.Result) bool {
	switch {
	case r.Type == gjson.Null, r.Type == gjson.False:
		return true
	case r.IsObject(), r.IsArray():
		empty := true
		r.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	case r.Type == gjson.String:
		return r.Str == ""
	case r.Type == gjson.Number:
		return r.Num == 0
	}
	return false
}

func valueOrNone(r gjson.Result) string {
	if !r.Exists() || r.Type == gjson.Null {
		return domain.MsgNone
	}
	return r.String()
}
