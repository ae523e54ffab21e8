// Package suggest asks a remote language model (OpenAI or Gemini) for the
// translation of a word the lexicon does not know, and can append the
// resulting pair to the local word lists.
package suggest
