package oracle

import "github.com/abhisek/intervu/internal/llm"

// CaseStudySchema defines the JSON schema for case study generation.
var CaseStudySchema = &llm.Schema{
	Name:        "case-study",
	Description: "A business case study scenario with a small text-based dataset",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario": map[string]any{
				"type":        "string",
				"description": "A short, realistic business scenario framing the case study",
			},
			"dataset_description": map[string]any{
				"type":        "string",
				"description": "A text rendering of a 3-4 column dataset with a few rows, including deliberate messiness (extra spaces, inconsistent casing)",
			},
		},
		"required":             []any{"scenario", "dataset_description"},
		"additionalProperties": false,
	},
}

// IntentSchema defines the JSON schema for intent classification.
var IntentSchema = &llm.Schema{
	Name:        "candidate-intent",
	Description: "Classification of what the candidate's reply is doing",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type":        "string",
				"enum":        []any{"ANSWERING", "HINT_REQUEST", "UNCERTAIN"},
				"description": "ANSWERING: attempting the question. HINT_REQUEST: asking for help or clarification. UNCERTAIN: doesn't know the answer.",
			},
		},
		"required":             []any{"intent"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for technical answer evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "technical-evaluation",
	Description: "Scored evaluation of a candidate's technical answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Correctness score from 1 (wrong) to 5 (fully correct)",
			},
			"justification": map[string]any{
				"type":        "string",
				"description": "Reasoning for the correctness score",
			},
			"efficiency_score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "How efficient the proposed approach is, 1-5",
			},
			"efficiency_justification": map[string]any{
				"type":        "string",
				"description": "Reasoning for the efficiency score",
			},
			"bot_response": map[string]any{
				"type":        "string",
				"description": "A short, conversational reply to the candidate. Do not reveal the scores.",
			},
		},
		"required":             []any{"score", "justification", "efficiency_score", "efficiency_justification", "bot_response"},
		"additionalProperties": false,
	},
}

// BehavioralEvaluationSchema defines the JSON schema for behavioral
// answer evaluation.
var BehavioralEvaluationSchema = &llm.Schema{
	Name:        "behavioral-evaluation",
	Description: "Scored evaluation of a behavioral interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Structure and clarity score from 1 (unstructured) to 5 (clear and well-structured)",
			},
			"justification": map[string]any{
				"type":        "string",
				"description": "Brief reasoning for the score",
			},
		},
		"required":             []any{"score", "justification"},
		"additionalProperties": false,
	},
}
