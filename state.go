package jsonstream

// State is one node of the pushdown automaton that drives the parser.
// The stack of States is the only mutable structure besides the number
// accumulator; the current document position is always exactly
// "top of stack".
type State uint8

// The full state set. Grouped by the grammar production each state
// belongs to, in the order they're first pushed during a parse.
const (
	stateJson State = iota // initial; expect one top-level element
	stateElement
	stateWs
	stateValue

	stateObject1
	stateObject2
	stateObject3
	stateObject4
	stateColon

	stateArray1
	stateArray2
	stateArray3
	stateArray4

	stateString1
	stateString2
	stateString3

	stateNumber
	stateNumberMant1
	stateNumberMant2
	stateNumberFract1
	stateNumberFract2
	stateNumberFract3
	stateNumberExp
	stateNumberExpSign
	stateNumberExpDigits1
	stateNumberExpDigits2
	stateNumberEnd

	stateTrue1
	stateTrue2
	stateTrue3
	stateTrue4

	stateFalse1
	stateFalse2
	stateFalse3
	stateFalse4
	stateFalse5

	stateNull1
	stateNull2
	stateNull3
	stateNull4

	numStates
)

// End is the terminal state: an empty stack. It is never actually
// pushed onto the stack; current reports it when the stack is empty.
const stateEnd State = numStates

var stateNames = [...]string{
	stateJson:             "Json",
	stateElement:          "Element",
	stateWs:               "Ws",
	stateValue:            "Value",
	stateObject1:          "Object1",
	stateObject2:          "Object2",
	stateObject3:          "Object3",
	stateObject4:          "Object4",
	stateColon:            "Colon",
	stateArray1:           "Array1",
	stateArray2:           "Array2",
	stateArray3:           "Array3",
	stateArray4:           "Array4",
	stateString1:          "String1",
	stateString2:          "String2",
	stateString3:          "String3",
	stateNumber:           "Number",
	stateNumberMant1:      "NumberMant1",
	stateNumberMant2:      "NumberMant2",
	stateNumberFract1:     "NumberFract1",
	stateNumberFract2:     "NumberFract2",
	stateNumberFract3:     "NumberFract3",
	stateNumberExp:        "NumberExp",
	stateNumberExpSign:    "NumberExpSign",
	stateNumberExpDigits1: "NumberExpDigits1",
	stateNumberExpDigits2: "NumberExpDigits2",
	stateNumberEnd:        "NumberEnd",
	stateTrue1:            "True1",
	stateTrue2:            "True2",
	stateTrue3:            "True3",
	stateTrue4:            "True4",
	stateFalse1:           "False1",
	stateFalse2:           "False2",
	stateFalse3:           "False3",
	stateFalse4:           "False4",
	stateFalse5:           "False5",
	stateNull1:            "Null1",
	stateNull2:            "Null2",
	stateNull3:            "Null3",
	stateNull4:            "Null4",
}

func (s State) String() string {
	if s == stateEnd {
		return "End"
	}
	if int(s) < len(stateNames) && stateNames[s] != "" {
		return stateNames[s]
	}
	return "<unknown state>"
}
