package usecase

import (
	"reflect"
	"testing"
)

func TestValidateExactMatch(t *testing.T) {
	t.Parallel()

	headers := []string{"Order ID", "Quantity", "Price"}

	result := Validate(headers, []string{"order id", "quantity"}, false)
	if !result.Valid {
		t.Fatalf("expected valid, problems = %#v", result.Problems)
	}

	result = Validate(headers, []string{"order"}, false)
	if result.Valid {
		t.Fatal("expected invalid for partial name in exact mode")
	}
	if want := []string{`missing expected column "order"`}; !reflect.DeepEqual(result.Problems, want) {
		t.Fatalf("problems = %#v, want %#v", result.Problems, want)
	}
}

func TestValidateFuzzyMatch(t *testing.T) {
	t.Parallel()

	headers := []string{"Order ID", "Qty Ordered"}

	result := Validate(headers, []string{"order", "qty"}, true)
	if !result.Valid {
		t.Fatalf("expected valid, problems = %#v", result.Problems)
	}

	result = Validate(headers, []string{"price"}, true)
	if result.Valid {
		t.Fatal("expected invalid when no header contains the pattern")
	}
}

func TestValidateEmptyHeaders(t *testing.T) {
	t.Parallel()

	result := Validate(nil, []string{"order"}, false)
	if result.Valid {
		t.Fatal("expected invalid for empty header row")
	}
	if len(result.Problems) == 0 {
		t.Fatal("expected a problem describing the empty header row")
	}
}

func TestValidateNoExpectations(t *testing.T) {
	t.Parallel()

	result := Validate([]string{"anything"}, nil, false)
	if !result.Valid || len(result.Problems) != 0 {
		t.Fatalf("expected trivially valid result, got %#v", result)
	}
}
