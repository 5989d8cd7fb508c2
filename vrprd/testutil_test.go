package vrprd_test

import "github.com/katalvlaran/lvlath/vrprd"

// uniformData builds a Data for n clients where every off-diagonal travel
// time equals cost and every release date is zero. Used by tests that only
// care about a property that holds for any indexing into a flat matrix
// (e.g. "a move's delta is zero when every arc costs the same"), not about
// a specific asymmetric layout.
func uniformData(t testingT, n, cost int) *vrprd.Data {
	v := n + 1
	timeTo := make([]int, v*v)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if i != j {
				timeTo[i*v+j] = cost
			}
		}
	}
	releaseDate := make([]int, v)

	data, err := vrprd.NewData(n, timeTo, releaseDate, vrprd.DefaultParams())
	if err != nil {
		t.Fatalf("uniformData: NewData: %v", err)
	}
	return data
}

// testingT is the subset of *testing.T this helper file needs, so it can be
// shared by every _test.go file in the package without importing "testing"
// here just for a type name collision check.
type testingT interface {
	Fatalf(format string, args ...interface{})
}
