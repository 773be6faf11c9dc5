package parser

import (
	"fmt"
	"strings"
)

// Category is the syntactic class of a token. The set is closed; each
// member is backed by the one-byte symbol used in category strings.
type Category byte

const (
	Not          Category = '!'
	String       Category = '"'
	Number       Category = '#'
	Command      Category = '$' // every pure command shares this category
	Block        Category = '%' // synthesized by Group, never by Classify
	Do           Category = 'D'
	End          Category = 'E' // block terminator
	Repeat       Category = 'R'
	Say          Category = 'S'
	Times        Category = 'T'
	While        Category = 'W'
	DetectMarker Category = 'd'
)

// Categories lists every category in symbol order.
func Categories() []Category {
	return []Category{
		Not, String, Number, Command, Block,
		Do, End, Repeat, Say, Times, While, DetectMarker,
	}
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	switch c {
	case Not, String, Number, Command, Block,
		Do, End, Repeat, Say, Times, While, DetectMarker:
		return true
	}
	return false
}

// Symbol returns the byte used for c in a category string.
func (c Category) Symbol() byte {
	return byte(c)
}

func (c Category) String() string {
	switch c {
	case Not:
		return "Not"
	case String:
		return "String"
	case Number:
		return "Number"
	case Command:
		return "Command"
	case Block:
		return "Block"
	case Do:
		return "Do"
	case End:
		return "End"
	case Repeat:
		return "Repeat"
	case Say:
		return "Say"
	case Times:
		return "Times"
	case While:
		return "While"
	case DetectMarker:
		return "DetectMarker"
	}
	return fmt.Sprintf("Category(%q)", byte(c))
}

// Sentence is the category sequence of one line.
type Sentence []Category

// ParseSentence converts a category string back into a Sentence.
func ParseSentence(s string) (Sentence, error) {
	sentence := make(Sentence, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := Category(s[i])
		if !c.Valid() {
			return nil, fmt.Errorf("invalid category symbol %q at %d", s[i], i)
		}
		sentence = append(sentence, c)
	}
	return sentence, nil
}

// String returns the category string, one symbol per category.
func (s Sentence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		sb.WriteByte(c.Symbol())
	}
	return sb.String()
}

// Equal reports whether s and other hold the same categories.
func (s Sentence) Equal(other Sentence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
