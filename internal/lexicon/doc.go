// Package lexicon builds the bilingual English/Russian word mapping from two
// line-aligned word lists. Lists can be read from local files or from S3
// objects. A lexicon is immutable once built.
package lexicon
