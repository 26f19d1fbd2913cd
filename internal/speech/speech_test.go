package speech

import "testing"

func TestLanguageHint(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"what is gravity", "en"},
		{"गुरुत्वाकर्षण क्या है", "hi"},
		{"gravity kya hai", "hi"},
		{"samjhao photosynthesis", "hi"},
		{"explain the skyward trend", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := LanguageHint(tt.query); got != tt.want {
			t.Errorf("LanguageHint(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestDetectQuestion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"What is photosynthesis", true},
		{"is this right?", true},
		{"explain gravity to me", true},
		{"mujhe ganit samjhao", true},
		{"I studied algebra today", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := DetectQuestion(tt.text); got != tt.want {
			t.Errorf("DetectQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestBucketConfidence(t *testing.T) {
	tests := []struct {
		score float32
		want  string
	}{
		{0.95, ConfidenceHigh},
		{0.7, ConfidenceMedium},
		{0.3, ConfidenceLow},
		{0, ConfidenceMedium},
	}
	for _, tt := range tests {
		if got := bucketConfidence(tt.score); got != tt.want {
			t.Errorf("bucketConfidence(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
