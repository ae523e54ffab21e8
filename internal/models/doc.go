// Package models lists the OpenAI chat models that can serve translation
// suggestions with the configured API key.
package models
