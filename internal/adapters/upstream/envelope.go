package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/harbourline/freight_console_app/internal/apperrors"
)

// envelope is one layer of the backend's response wrapper. Responses
// arrive in three shapes: a bare object, `{result:{status, message?,
// ...data}}`, and occasionally `{result:{result:{...}}}`. All three are
// handled here so no call site ever inspects the wrapper itself.
type envelope struct {
	Result  json.RawMessage `json:"result"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
}

// maxEnvelopeDepth bounds how many result wrappers get peeled. The
// backend has been observed to double-wrap; anything deeper is treated
// as payload.
const maxEnvelopeDepth = 3

// unwrapEnvelope peels the wrapper layers off a response body and
// returns the innermost payload. If any layer (or the payload itself)
// carries status:"error", or the HTTP status indicates failure, the
// returned error is an UpstreamError with the normalized message:
// envelope message first, generic HTTP status text only when the body
// gave nothing better.
func unwrapEnvelope(body []byte, httpStatus int) (json.RawMessage, error) {
	payload := json.RawMessage(body)
	status, message := "", ""

	for depth := 0; depth < maxEnvelopeDepth; depth++ {
		var env envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			break
		}
		if env.Status != "" {
			status = env.Status
			message = env.Message
		}
		if env.Result == nil {
			break
		}
		payload = env.Result
	}

	if strings.EqualFold(status, "error") {
		if message == "" {
			message = httpStatusMessage(httpStatus)
		}
		return nil, apperrors.NewUpstreamError(message)
	}
	if httpStatus >= http.StatusBadRequest {
		if message == "" {
			message = httpStatusMessage(httpStatus)
		}
		return nil, apperrors.NewUpstreamError(message)
	}
	return payload, nil
}

func httpStatusMessage(httpStatus int) string {
	text := http.StatusText(httpStatus)
	if text == "" {
		text = "status " + strconv.Itoa(httpStatus)
	}
	return fmt.Sprintf("backend error (%d): %s", httpStatus, text)
}
