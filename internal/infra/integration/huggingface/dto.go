package huggingface

type textGenerationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters textGenerationParams `json:"parameters"`
	Options    inferenceOptions     `json:"options"`
}

type textGenerationParams struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type textGenerationResponse struct {
	GeneratedText string `json:"generated_text"`
}

type classificationRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

// LabelScore is one label/score pair of a classification response.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// errorResponse is what the inference router sends while a model is loading or the token is rejected.
type errorResponse struct {
	Error string `json:"error"`
}
