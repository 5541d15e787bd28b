package column

import "testing"

func TestRetypeIntegerToFloatRescalesValues(t *testing.T) {
	c := New("n", Inferred{Type: IntegerType}, 4)
	c.AppendInt(1)
	c.AppendInt(2)
	c.Retype(Inferred{Type: FloatType})
	if c.Type != FloatType {
		t.Fatalf("Type = %v, want FloatType", c.Type)
	}
	if len(c.Floats) != 2 || c.Floats[0] != 1 || c.Floats[1] != 2 {
		t.Errorf("Floats = %v, want [1 2]", c.Floats)
	}
}

func TestRetypeIntegerToStringPreservesValues(t *testing.T) {
	c := New("n", Inferred{Type: IntegerType}, 4)
	c.AppendInt(1)
	c.AppendInt(2)
	c.Retype(Inferred{Type: StringType})
	if c.Type != StringType {
		t.Fatalf("Type = %v, want StringType", c.Type)
	}
	if len(c.Strings) != 2 || c.Strings[0] != "1" || c.Strings[1] != "2" {
		t.Errorf("Strings = %v, want [1 2]", c.Strings)
	}
	if c.Ints != nil {
		t.Errorf("Ints should be cleared after widening to string, got %v", c.Ints)
	}
}

func TestRetypeFloatToStringPreservesValues(t *testing.T) {
	c := New("n", Inferred{Type: FloatType}, 2)
	c.AppendFloat(1.5)
	c.Retype(Inferred{Type: StringType})
	if len(c.Strings) != 1 || c.Strings[0] != "1.5" {
		t.Errorf("Strings = %v, want [1.5]", c.Strings)
	}
}

func TestRetypeBoolToStringPreservesValues(t *testing.T) {
	c := New("n", Inferred{Type: BoolType}, 2)
	c.AppendBool(true)
	c.AppendBool(false)
	c.Retype(Inferred{Type: StringType})
	if len(c.Strings) != 2 || c.Strings[0] != "true" || c.Strings[1] != "false" {
		t.Errorf("Strings = %v, want [true false]", c.Strings)
	}
}

func TestRetypeToStringKeepsMissingRowsEmpty(t *testing.T) {
	c := New("n", Inferred{Type: IntegerType, Optional: true}, 2)
	c.AppendInt(7)
	c.AppendMissing()
	c.Retype(Inferred{Type: StringType, Optional: true})
	if len(c.Strings) != 2 || c.Strings[0] != "7" || c.Strings[1] != "" {
		t.Errorf("Strings = %v, want [7 \"\"]", c.Strings)
	}
}

func TestRetypeMissingOnlyPreservesRowCount(t *testing.T) {
	c := New("n", Inferred{Type: MissingOnly, Optional: true}, 3)
	c.AppendMissing()
	c.AppendMissing()
	c.AppendMissing()
	c.Retype(Inferred{Type: IntegerType, Optional: true})
	if c.Type != IntegerType {
		t.Fatalf("Type = %v, want IntegerType", c.Type)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (rows must survive the retype)", c.Len())
	}
	if len(c.Valid) != 3 {
		t.Fatalf("len(Valid) = %d, want 3", len(c.Valid))
	}
	for i, v := range c.Valid {
		if v {
			t.Errorf("Valid[%d] = true, want false (all rows were missing)", i)
		}
	}
}
