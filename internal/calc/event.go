package calc

import "strconv"

// Kind identifies an input event
type Kind int

const (
	KindDigit Kind = iota + 1
	KindDecimal
	KindOperator
	KindEquals
	KindClearEntry
	KindClearAll
	KindToggleSign
	KindPercent
	KindMemoryStore
	KindMemoryRecall
	KindMemoryAdd
	KindMemoryClear
	KindHistorySelect
)

var kindNames = map[Kind]string{
	KindDigit:         "digit",
	KindDecimal:       "decimal",
	KindOperator:      "operator",
	KindEquals:        "equals",
	KindClearEntry:    "clear_entry",
	KindClearAll:      "clear_all",
	KindToggleSign:    "toggle_sign",
	KindPercent:       "percent",
	KindMemoryStore:   "memory_store",
	KindMemoryRecall:  "memory_recall",
	KindMemoryAdd:     "memory_add",
	KindMemoryClear:   "memory_clear",
	KindHistorySelect: "history_select",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single user input
type Event struct {
	Kind     Kind
	Digit    int
	Operator Operator
	Entry    HistoryEntry
}

func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return e.Kind.String() + "(" + strconv.Itoa(e.Digit) + ")"
	case KindOperator:
		return e.Kind.String() + "(" + e.Operator.String() + ")"
	default:
		return e.Kind.String()
	}
}

func Digit(d int) Event { return Event{Kind: KindDigit, Digit: d} }
func Decimal() Event { return Event{Kind: KindDecimal} }
func Press(op Operator) Event { return Event{Kind: KindOperator, Operator: op} }
func Equals() Event { return Event{Kind: KindEquals} }
func ClearEntry() Event { return Event{Kind: KindClearEntry} }
func ClearAll() Event { return Event{Kind: KindClearAll} }
func ToggleSign() Event { return Event{Kind: KindToggleSign} }
func Percent() Event { return Event{Kind: KindPercent} }
func MemoryStore() Event { return Event{Kind: KindMemoryStore} }
func MemoryRecall() Event { return Event{Kind: KindMemoryRecall} }
func MemoryAdd() Event { return Event{Kind: KindMemoryAdd} }
func MemoryClear() Event { return Event{Kind: KindMemoryClear} }
func SelectHistory(e HistoryEntry) Event { return Event{Kind: KindHistorySelect, Entry: e} }
