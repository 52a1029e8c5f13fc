package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrPredictionFailed is the only error callers see for transport failures
// and non-2xx answers. The raw status is logged here and never shown to the
// patient.
var ErrPredictionFailed = errors.New("failed to fetch prediction")

// Result is the response of the external disease-prediction API, field
// names matching its JSON exactly.
type Result struct {
	PredictedDisease   string   `json:"predicted_disease"`
	DiseaseDescription string   `json:"disease_description"`
	Precautions        []string `json:"precautions"`
	Medications        []string `json:"medications"`
	RecommendedDiet    []string `json:"recommended_diet"`
	RecommendedWorkout string   `json:"recommended_workout"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Predict submits the raw comma-separated symptom input and returns the
// prediction. The input is split on commas without trimming, matching what
// the prediction service has always been fed.
func (c *Client) Predict(ctx context.Context, symptoms string) (*Result, error) {
	payload, err := json.Marshal(map[string][]string{
		"symptoms": strings.Split(symptoms, ","),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Println("Prediction request failed:", err)
		return nil, ErrPredictionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Println("Prediction service returned status", resp.StatusCode)
		return nil, ErrPredictionFailed
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Println("Failed to decode prediction response:", err)
		return nil, ErrPredictionFailed
	}
	return &result, nil
}
