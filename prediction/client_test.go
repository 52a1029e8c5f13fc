package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestPredictSendsRawCommaSplit(t *testing.T) {
	var got struct {
		Symptoms []string `json:"symptoms"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(Result{PredictedDisease: "Bronchitis"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Predict(context.Background(), "cough, fatigue,chest pain")
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}

	// Tokens go over the wire exactly as typed, whitespace included.
	want := []string{"cough", " fatigue", "chest pain"}
	if !reflect.DeepEqual(got.Symptoms, want) {
		t.Errorf("sent symptoms %v, want %v", got.Symptoms, want)
	}
	if result.PredictedDisease != "Bronchitis" {
		t.Errorf("got disease %q", result.PredictedDisease)
	}
}

func TestPredictDecodesFullResult(t *testing.T) {
	want := Result{
		PredictedDisease:   "Bronchitis",
		DiseaseDescription: "Inflammation of the bronchial tubes.",
		Precautions:        []string{"rest", "stay hydrated"},
		Medications:        []string{"expectorants"},
		RecommendedDiet:    []string{"warm fluids"},
		RecommendedWorkout: "Light walking once fever subsides",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	got, err := NewClient(server.URL).Predict(context.Background(), "cough,fatigue")
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestPredictNon2xxIsGenericFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Predict(context.Background(), "cough")
	if !errors.Is(err, ErrPredictionFailed) {
		t.Errorf("got %v, want ErrPredictionFailed", err)
	}
}

func TestPredictTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := NewClient(server.URL).Predict(context.Background(), "cough")
	if !errors.Is(err, ErrPredictionFailed) {
		t.Errorf("got %v, want ErrPredictionFailed", err)
	}
}
