// Package namegram is an in-memory playground for learning the shape of
// short names and inventing new ones — without shipping a corpus.
//
// 🚀 What is namegram?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Alphabet: a closed 29-symbol set (a–z, dash, apostrophe, End)
//		• Phonemes: a 10-way phonetic classifier with 4-symbol lookback
//		• NGram tables: fixed-radix frequency rows with saturating counters
//		• A statistical model: positive/negative reinforcement, length-aware
//		  termination, Rule-of-Succession smoothing, optional sharpening
//
// ✨ Why choose namegram?
//
//   - Corpus-free – the model keeps counts, never the training names
//   - Deterministic – randomness is injected; same seed, same names
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – easing scales, sharpening and length bounds per experiment
//
// Under the hood, everything is organized under five subpackages:
//
//	alphabet/ — Symbol enumeration, encode/decode, dense index bijection
//	phoneme/  — Category enumeration and the lookback classifier
//	ngram/    — generic fixed-radix frequency Table
//	namegen/  — the Model orchestrator: ingest, distribution, generation
//	sample/   — padded training records with optional metadata labels
//
// Quick example:
//
//	m, _ := namegen.New(namegen.DefaultOptions())
//	_ = m.ReadPositiveSample([]rune("ann"))
//	name, _ := m.Generate()
//
// Dive into DESIGN.md for the decision record and examples/ for full
// training-and-generation scenarios.
//
//	go get github.com/katalvlaran/namegram
package namegram
