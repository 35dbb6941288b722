package options

import "testing"

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  Kind
	}{
		{"bool", Bool(true), KindBool},
		{"int", Int(-5), KindInt},
		{"uint", Uint(5), KindUint},
		{"double", Double(0.5), KindDouble},
		{"string", String("x"), KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, tt.value.Kind())
			}
		})
	}
}

func TestValueCoercion(t *testing.T) {
	if got := Double(64.7).Int(); got != 64 {
		t.Fatalf("expected double 64.7 to coerce to int 64, got %d", got)
	}
	if got := Int(32).Double(); got != 32.0 {
		t.Fatalf("expected int 32 to widen to 32.0, got %f", got)
	}
	if got := Uint(7).Int(); got != 7 {
		t.Fatalf("expected uint 7 to convert to int 7, got %d", got)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Bool(true), "true"},
		{Int(-3), "-3"},
		{Uint(12), "12"},
		{Double(0.25), "0.25"},
		{String("GreedyLogSum"), "GreedyLogSum"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestValueEquality(t *testing.T) {
	if Int(3) != Int(3) {
		t.Fatal("expected equal int values to compare equal")
	}
	if Int(3) == Double(3) {
		t.Fatal("expected int and double payloads to compare unequal")
	}
}

func TestFromInterface(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Value
	}{
		{"bool", true, Bool(true)},
		{"int", 42, Int(42)},
		{"int64", int64(-1), Int(-1)},
		{"uint64", uint64(9), Uint(9)},
		{"float64", 0.1, Double(0.1)},
		{"string", "Min", String("Min")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromInterface(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if _, err := FromInterface([]int{1}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestPlainClone(t *testing.T) {
	orig := Plain{"learning_rate": Double(0.03)}
	clone := orig.Clone()
	clone["learning_rate"] = Double(0.1)

	if orig["learning_rate"] != Double(0.03) {
		t.Fatal("expected clone mutation to leave the original untouched")
	}
}
