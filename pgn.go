/*
pgn.go implements serialization of a [Game] into Portable Game Notation.
Functions in this file expect tags to already hold whatever metadata the
caller wants recorded (Event, Site, Date, White, Black, ...); this package
has no notion of player identity or clocks, so it only fills in the seven
tags the PGN standard requires ("Seven Tag Roster") when the caller omits
them.
*/

package chego

import (
	"strconv"
	"strings"
)

var requiredTags = [...]string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// resultTag renders g.Result as the PGN result token.
func resultTag(r Result) string {
	switch r {
	case ResultCheckmate, ResultResignation, ResultTimeout:
		return "1-0" // SerializePGN uses tags["Result"] instead when given
	case ResultUnscored:
		return "*"
	default:
		return "1/2-1/2"
	}
}

// SerializePGN serializes g into a PGN string using tags for the header.
// Any of the seven required tags missing from tags is filled with "?",
// except Result, which is derived from g.Result. The movetext ends with the
// same result token as the Result tag.
func SerializePGN(g *Game, tags map[string]string) string {
	var b strings.Builder

	result := resultTag(g.Result)
	if v := tags["Result"]; v != "" {
		result = v
	}

	for _, tag := range requiredTags {
		value, ok := tags[tag]
		if !ok || value == "" {
			if tag == "Result" {
				value = result
			} else {
				value = "?"
			}
		}
		b.WriteByte('[')
		b.WriteString(tag)
		b.WriteString(" \"")
		b.WriteString(value)
		b.WriteString("\"]\n")
	}
	for name, value := range tags {
		if isRequiredTag(name) {
			continue
		}
		b.WriteByte('[')
		b.WriteString(name)
		b.WriteString(" \"")
		b.WriteString(value)
		b.WriteString("\"]\n")
	}
	b.WriteByte('\n')

	for i, san := range g.sans {
		if i%2 == 0 {
			b.WriteString(strconv.Itoa(i/2 + 1))
			b.WriteString(". ")
		}
		b.WriteString(san)
		b.WriteByte(' ')
	}
	b.WriteString(result)

	return b.String()
}

func isRequiredTag(name string) bool {
	for _, tag := range requiredTags {
		if tag == name {
			return true
		}
	}
	return false
}
