package euler

import (
	"testing"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

// bruteSumMultiplesOf3Or5Below is the naive O(n) reference used to validate
// the closed form on small bounds.
func bruteSumMultiplesOf3Or5Below(n uint64) uint64 {
	var sum uint64
	for i := uint64(1); i < n; i++ {
		if i%3 == 0 || i%5 == 0 {
			sum += i
		}
	}
	return sum
}

func TestSumMultiplesOf3Or5Below_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want uint64
	}{
		{"n=1 has no terms", 1, 0},
		{"n=2 has no terms", 2, 0},
		{"n=3 excludes 3 itself", 3, 0},
		{"n=4 includes 3", 4, 3},
		{"n=6 includes 3 and 5", 6, 8},
		{"n=10 canonical small case", 10, 23},
		{"n=16 counts 15 once", 16, 60},
		{"n=100", 100, 2318},
		{"n=1000 classic answer", 1000, 233168},
		{"n=10^9 upper bound", 1_000_000_000, 233333333166666668},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumMultiplesOf3Or5Below(tt.n)
			if err != nil {
				t.Fatalf("SumMultiplesOf3Or5Below(%d) returned error: %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("SumMultiplesOf3Or5Below(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestSumMultiplesOf3Or5Below_MatchesBruteForce(t *testing.T) {
	for n := uint64(1); n <= 10_000; n++ {
		got, err := SumMultiplesOf3Or5Below(n)
		if err != nil {
			t.Fatalf("SumMultiplesOf3Or5Below(%d) returned error: %v", n, err)
		}
		if want := bruteSumMultiplesOf3Or5Below(n); got != want {
			t.Fatalf("SumMultiplesOf3Or5Below(%d) = %d, brute force gives %d", n, got, want)
		}
	}
}

func TestSumMultiplesOf3Or5Below_RejectsZero(t *testing.T) {
	_, err := SumMultiplesOf3Or5Below(0)
	if err == nil {
		t.Fatal("SumMultiplesOf3Or5Below(0) should return an error")
	}
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("error should be an InvalidArgumentError, got %T: %v", err, err)
	}
}

func TestSumMultiplesBelow(t *testing.T) {
	tests := []struct {
		name    string
		n, m    uint64
		want    uint64
		wantErr bool
	}{
		{"multiples of 3 below 10", 10, 3, 18, false},
		{"multiples of 5 below 10", 10, 5, 5, false},
		{"multiples of 15 below 10", 10, 15, 0, false},
		{"n equals m yields zero", 7, 7, 0, false},
		{"m of 1 sums all integers", 11, 1, 55, false},
		{"n of zero rejected", 0, 3, 0, true},
		{"m of zero rejected", 10, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumMultiplesBelow(tt.n, tt.m)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SumMultiplesBelow(%d, %d) should return an error", tt.n, tt.m)
				}
				if !apperrors.IsInvalidArgument(err) {
					t.Errorf("error should be an InvalidArgumentError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SumMultiplesBelow(%d, %d) returned error: %v", tt.n, tt.m, err)
			}
			if got != tt.want {
				t.Errorf("SumMultiplesBelow(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
			}
		})
	}
}
