package codegen

// Language describes the robot language understood by package parser.
func Language() *Tables {
	return &Tables{
		Package:   "parser",
		Generator: "robogen",
		Categories: []Category{
			{Ident: "Command", Symbol: '$', Display: "<command>"},
			{Ident: "Number", Symbol: '#', Display: "<number>"},
			{Ident: "String", Symbol: '"', Display: "<string>"},
			{Ident: "Block", Symbol: '%', Display: "<command>... END"},
			{Ident: "End", Symbol: 'E', Display: "END"},
			{Ident: "Repeat", Symbol: 'R', Display: "REPEAT"},
			{Ident: "Times", Symbol: 'T', Display: "TIMES"},
			{Ident: "While", Symbol: 'W', Display: "WHILE"},
			{Ident: "Not", Symbol: '!', Display: "NOT"},
			{Ident: "DetectMarker", Symbol: 'd', Display: "DETECTMARKER"},
			{Ident: "Do", Symbol: 'D', Display: "DO"},
			{Ident: "Say", Symbol: 'S', Display: "SAY"},
		},
		Keywords: []Keyword{
			{Word: "TAKEASTEP", ID: "KeywordTakeAStep", Category: "Command"},
			{Word: "LEFT", ID: "KeywordLeft", Category: "Command"},
			{Word: "RIGHT", ID: "KeywordRight", Category: "Command"},
			{Word: "PICKUP", ID: "KeywordPickUp", Category: "Command"},
			{Word: "DROP", ID: "KeywordDrop", Category: "Command"},
			{Word: "TURNON", ID: "KeywordTurnOn", Category: "Command"},
			{Word: "TURNOFF", ID: "KeywordTurnOff", Category: "Command"},
			{Word: "REPEAT", ID: "KeywordRepeat", Category: "Repeat"},
			{Word: "TIMES", ID: "KeywordTimes", Category: "Times"},
			{Word: "END", ID: "KeywordEnd", Category: "End"},
			{Word: "WHILE", ID: "KeywordWhile", Category: "While"},
			{Word: "NOT", ID: "KeywordNot", Category: "Not"},
			{Word: "DETECTMARKER", ID: "KeywordDetectMarker", Category: "DetectMarker"},
			{Word: "DO", ID: "KeywordDo", Category: "Do"},
			{Word: "SAY", ID: "KeywordSay", Category: "Say"},
		},
		Patterns: [][]string{
			{"Command"},
			{"Repeat", "Number", "Times", "Block"},
			{"While", "Not", "DetectMarker", "Do", "Block"},
			{"Say", "String"},
			{}, // blank line
		},
	}
}
