// Package mojifix repairs emoji and symbol text inside exported JSON documents
// whose strings were damaged by encoding mismatches:
//
// - Mojibake: UTF-8 bytes that were decoded as Latin-1, one rune per byte
// - Double encoding: literal \uXXXX runs left over from an earlier unescape step
//
// The core is pure and in-memory:
//
// - Repair / Classify work on a single string
// - Walk rebuilds a document with every string leaf repaired
// - CountFlagged counts leaves that match the corruption heuristics
// - Diff lists the leaves that differ between two documents
//
// Loading (Load, LoadFile) and writing (Encode) are provided as collaborators
// around the core. Loading goes through the Source/JSONDriver token SPI; the
// go-json driver is installed by importing github.com/reoring/mojifix/source.
//
// Typical usage:
//
//	res, err := mojifix.LoadFile("message_1.json")
//	fixed := mojifix.Walk(res.Value)
//	fixes := mojifix.Diff(res.Value, fixed)
//	err = mojifix.Encode(w, fixed)
package mojifix
