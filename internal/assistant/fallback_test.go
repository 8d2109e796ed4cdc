package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReply(t *testing.T) {
	testCases := map[string]struct {
		message          string
		expectedContains string
	}{
		"services": {
			message:          "What services do you offer?",
			expectedContains: "DevOps Consulting",
		},
		"consultancy": {
			message:          "I need consultancy on cloud migration",
			expectedContains: "AWS Cloud Consultancy",
		},
		"contact": {
			message:          "How do I contact you?",
			expectedContains: "+91 9461232921",
		},
		"pricing": {
			message:          "what is your PRICING like",
			expectedContains: "customized quotes",
		},
		"team": {
			message:          "who is on your team?",
			expectedContains: "Ankit Sharma",
		},
		"experience": {
			message:          "how much experience do you have",
			expectedContains: "50+ projects",
		},
		"devops": {
			message:          "do you do DevOps?",
			expectedContains: "CI/CD pipeline",
		},
		"cloud": {
			message:          "cloud infrastructure question",
			expectedContains: "AWS cloud solutions",
		},
		"security": {
			message:          "tell me about security",
			expectedContains: "cybersecurity services",
		},
		"greeting": {
			message:          "hello there",
			expectedContains: "Welcome to Codigohunt Solutions",
		},
		"help": {
			message:          "can you help me out",
			expectedContains: "What specific area interests you",
		},
		"default": {
			message:          "zebra lamp uptown",
			expectedContains: "contacting our team directly",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			reply := FallbackReply(tc.message)
			assert.NotEmpty(t, reply)
			assert.Contains(t, reply, tc.expectedContains)
		})
	}
}
