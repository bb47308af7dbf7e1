package webhook

// Request is the inbound fulfillment envelope. Only the fields the
// engine consumes are mapped; everything else in the payload is
// ignored.
type Request struct {
	QueryResult struct {
		QueryText string `json:"queryText"`
	} `json:"queryResult"`

	OriginalDetectIntentRequest struct {
		Payload struct {
			User struct {
				UserID string `json:"userId"`
			} `json:"user"`
		} `json:"payload"`
	} `json:"originalDetectIntentRequest"`
}

// UserID extracts the caller's user id. Empty when the envelope
// carries none; the engine substitutes its shared fallback id.
func (r *Request) UserID() string {
	return r.OriginalDetectIntentRequest.Payload.User.UserID
}

// Text extracts the user's turn text.
func (r *Request) Text() string {
	return r.QueryResult.QueryText
}

// Response is the outbound fulfillment envelope. FulfillmentText joins
// the reply sequence for clients that render a single bubble;
// FulfillmentMessages carries the sequence one message per entry.
type Response struct {
	FulfillmentText     string    `json:"fulfillmentText"`
	FulfillmentMessages []Message `json:"fulfillmentMessages,omitempty"`
}

// Message is one entry in the reply sequence.
type Message struct {
	Text TextBlock `json:"text"`
}

// TextBlock wraps message text the way fulfillment clients expect it.
type TextBlock struct {
	Text []string `json:"text"`
}

// NewResponse builds a Response from an ordered reply sequence.
func NewResponse(messages []string) Response {
	resp := Response{}
	for _, m := range messages {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, Message{
			Text: TextBlock{Text: []string{m}},
		})
	}
	if len(messages) > 0 {
		resp.FulfillmentText = messages[0]
		for _, m := range messages[1:] {
			resp.FulfillmentText += "\n\n" + m
		}
	}
	return resp
}
