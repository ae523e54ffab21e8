// Package processor ties the lexicon, the translator and the optional
// history, Anki and suggestion features together for each run mode of the
// command line tool. It is the main coordinator between all other components.
package processor
