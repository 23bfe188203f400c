package gemini

// Wire shapes for the generateContent endpoint. Request and response are both
// nested text-part structures; only the fields this service reads or writes
// are declared.

type generateRequest struct {
	Contents          []content `json:"contents"`
	Tools             []tool    `json:"tools,omitempty"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// tool carries the web-grounded search flag. The empty object value is the
// wire form of "enabled".
type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content           content            `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingAttributions []groundingAttribution `json:"groundingAttributions,omitempty"`
}

type groundingAttribution struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}
