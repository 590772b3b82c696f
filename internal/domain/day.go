package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// The cycle is fixed at twelve days for the life of the system.
const CycleLength = 12

// DayDefinition describes one slot of the 12-day workout cycle.
// Definitions are static reference data, seeded once and never mutated.
type DayDefinition struct {
	ID                  string   `bson:"_id,omitempty" json:"id,omitempty"`
	Type                string   `bson:"type" json:"type,omitempty"`
	DayNumber           int      `bson:"dayNumber" json:"dayNumber"`
	Name                string   `bson:"name" json:"name"`
	Focus               string   `bson:"focus" json:"focus"`
	PrimaryMuscleGroups []string `bson:"primaryMuscleGroups" json:"primaryMuscleGroups"`
	// Warning is only set for days with a contraindication (day 8 in the seed set).
	Warning string `bson:"warning,omitempty" json:"warning,omitempty"`
}

// Exercise is a prescribed exercise from the library, tied to a cycle day.
type Exercise struct {
	ID        string `bson:"_id,omitempty" json:"id,omitempty"`
	Type      string `bson:"type" json:"type,omitempty"`
	Name      string `bson:"name" json:"name"`
	DayNumber int    `bson:"dayNumber" json:"dayNumber"`
	Equipment string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Location  string `bson:"location,omitempty" json:"location,omitempty"`
	// TargetWeight is signed: the seed data uses a negative value for
	// assisted (negative-resistance) exercises, e.g. machine dips at -90.
	TargetWeight *float64   `bson:"targetWeight,omitempty" json:"targetWeight,omitempty"`
	TargetReps   *RepTarget `bson:"targetReps,omitempty" json:"targetReps,omitempty"`
	TargetSets   *int       `bson:"targetSets,omitempty" json:"targetSets,omitempty"`
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

// RepTarget is a rep prescription that is either a plain number (12) or
// free text ("12-15", "Failure", "5 minutes"). Exactly one side is set.
type RepTarget struct {
	Number int
	Text   string
}

// Reps returns a numeric RepTarget.
func Reps(n int) *RepTarget { return &RepTarget{Number: n} }

// RepsText returns a free-text RepTarget.
func RepsText(s string) *RepTarget { return &RepTarget{Text: s} }

func (r RepTarget) IsNumeric() bool { return r.Text == "" }

func (r RepTarget) String() string {
	if r.IsNumeric() {
		return strconv.Itoa(r.Number)
	}
	return r.Text
}

func (r RepTarget) MarshalJSON() ([]byte, error) {
	if r.IsNumeric() {
		return json.Marshal(r.Number)
	}
	return json.Marshal(r.Text)
}

func (r *RepTarget) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RepTarget{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rep target must be a number or a string: %w", err)
	}
	*r = RepTarget{Text: s}
	return nil
}

func (r RepTarget) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.IsNumeric() {
		return bson.MarshalValue(int32(r.Number))
	}
	return bson.MarshalValue(r.Text)
}

func (r *RepTarget) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		*r = RepTarget{Number: int(rv.Int32())}
	case bsontype.Int64:
		*r = RepTarget{Number: int(rv.Int64())}
	case bsontype.Double:
		*r = RepTarget{Number: int(rv.Double())}
	case bsontype.String:
		*r = RepTarget{Text: rv.StringValue()}
	default:
		return fmt.Errorf("rep target: unsupported bson type %s", t)
	}
	return nil
}
