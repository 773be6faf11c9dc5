package parser

//go:generate go run ../../cmd/robogen -o tables_gen.go

// Keyword identifies a reserved word of the robot language.
type Keyword int

const (
	NotKeyword Keyword = iota
	KeywordTakeAStep
	KeywordLeft
	KeywordRight
	KeywordPickUp
	KeywordDrop
	KeywordTurnOn
	KeywordTurnOff
	KeywordRepeat
	KeywordTimes
	KeywordEnd
	KeywordWhile
	KeywordNot
	KeywordDetectMarker
	KeywordDo
	KeywordSay
)

// commandEntry is one row of the command table.
type commandEntry struct {
	keyword  string
	id       Keyword
	category Category
}

// displayEntry is one row of the display table.
type displayEntry struct {
	category Category
	name     string
}
