package motion

import "fmt"

// Condition labels the quality of a recorded jump.
type Condition string

const (
	Good Condition = "good"
	Bad  Condition = "bad"
)

// JumpType labels the recorded jump exercise.
type JumpType string

const (
	OneD JumpType = "1d"
	TwoD JumpType = "2d"
)

func Conditions() []Condition { return []Condition{Good, Bad} }

func JumpTypes() []JumpType { return []JumpType{OneD, TwoD} }

func ParseCondition(s string) (Condition, error) {
	switch c := Condition(s); c {
	case Good, Bad:
		return c, nil
	}
	return "", fmt.Errorf("unknown condition: %q (want good or bad)", s)
}

func ParseJumpType(s string) (JumpType, error) {
	switch j := JumpType(s); j {
	case OneD, TwoD:
		return j, nil
	}
	return "", fmt.Errorf("unknown jump type: %q (want 1d or 2d)", s)
}

// Key identifies one recording.
type Key struct {
	Condition Condition
	JumpType  JumpType
}

func (k Key) String() string {
	return string(k.Condition) + "/" + string(k.JumpType)
}

// Dataset maps recordings to their loaded series.
type Dataset map[Key]*Series

// Get returns the series for (c, j), or nil.
func (d Dataset) Get(c Condition, j JumpType) *Series {
	return d[Key{Condition: c, JumpType: j}]
}
